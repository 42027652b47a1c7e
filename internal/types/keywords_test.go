package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordCategory_Valid(t *testing.T) {
	for _, category := range AllCategories() {
		assert.True(t, category.Valid(), "category %s", category)
	}

	assert.False(t, KeywordCategory("other").Valid())
	assert.False(t, KeywordCategory("").Valid())
	assert.False(t, KeywordCategory("Skill").Valid(), "category values are case-sensitive")
}

func TestNewKeyword(t *testing.T) {
	kw := NewKeyword("Go", CategorySkill)
	assert.Equal(t, "Go", kw.Name)
	assert.Equal(t, CategorySkill, kw.Category)
	assert.NotEqual(t, NewKeyword("Go", CategorySkill).ID, kw.ID, "each keyword gets a fresh ID")
}

func TestCategorizedKeywords_RoundTrip(t *testing.T) {
	ck := NewCategorizedKeywords()
	assert.Equal(t, 0, ck.Total())

	for _, category := range AllCategories() {
		assert.NotNil(t, ck.ForCategory(category))
		assert.Empty(t, ck.ForCategory(category))
	}

	skills := []Keyword{NewKeyword("Go", CategorySkill), NewKeyword("SQL", CategorySkill)}
	ck.SetCategory(CategorySkill, skills)
	ck.SetCategory(CategoryIndustry, []Keyword{NewKeyword("Energy", CategoryIndustry)})

	assert.Equal(t, skills, ck.ForCategory(CategorySkill))
	assert.Equal(t, 3, ck.Total())
}

func TestCategorizedKeywords_SetNilBecomesEmpty(t *testing.T) {
	ck := NewCategorizedKeywords()
	ck.SetCategory(CategorySkill, nil)
	assert.NotNil(t, ck.Skills)
	assert.Empty(t, ck.Skills)
}

func TestCategorizedKeywords_UnknownCategory(t *testing.T) {
	ck := NewCategorizedKeywords()
	assert.Nil(t, ck.ForCategory(KeywordCategory("other")))

	ck.SetCategory(KeywordCategory("other"), []Keyword{NewKeyword("x", "other")})
	assert.Equal(t, 0, ck.Total(), "unknown categories are dropped")
}
