package types

import "github.com/google/uuid"

// KeywordCategory identifies one of the five fixed tag categories.
type KeywordCategory string

// The five keyword categories. There is no "other" bucket: an entry that
// does not belong to one of these is not a keyword.
const (
	CategorySkill         KeywordCategory = "skill"
	CategoryCompany       KeywordCategory = "company"
	CategoryJobTitle      KeywordCategory = "job_title"
	CategoryIndustry      KeywordCategory = "industry"
	CategoryCertification KeywordCategory = "certification"
)

// AllCategories returns the five categories in their canonical order.
func AllCategories() []KeywordCategory {
	return []KeywordCategory{
		CategorySkill,
		CategoryCompany,
		CategoryJobTitle,
		CategoryIndustry,
		CategoryCertification,
	}
}

// Valid reports whether c is one of the five known categories.
func (c KeywordCategory) Valid() bool {
	switch c {
	case CategorySkill, CategoryCompany, CategoryJobTitle, CategoryIndustry, CategoryCertification:
		return true
	}
	return false
}

// Keyword is a single categorized tag proposed by the mapping pipeline.
// The ID is opaque and unique per pipeline invocation; persistence assigns
// its own identity via the create-or-get contract.
type Keyword struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Category KeywordCategory `json:"category"`
}

// NewKeyword builds a Keyword with a fresh ID.
func NewKeyword(name string, category KeywordCategory) Keyword {
	return Keyword{ID: uuid.New(), Name: name, Category: category}
}

// CategorizedKeywords groups proposed keywords by category. All five
// categories are always present; a category the document said nothing
// about is an empty (never nil-meaningful) slice.
type CategorizedKeywords struct {
	Skills         []Keyword `json:"skills"`
	Companies      []Keyword `json:"companies"`
	JobTitles      []Keyword `json:"job_titles"`
	Industries     []Keyword `json:"industries"`
	Certifications []Keyword `json:"certifications"`
}

// NewCategorizedKeywords returns an empty set with all categories initialized.
func NewCategorizedKeywords() CategorizedKeywords {
	return CategorizedKeywords{
		Skills:         []Keyword{},
		Companies:      []Keyword{},
		JobTitles:      []Keyword{},
		Industries:     []Keyword{},
		Certifications: []Keyword{},
	}
}

// ForCategory returns the keyword list for a category. Unknown categories
// return nil; callers using AllCategories never hit that branch.
func (ck *CategorizedKeywords) ForCategory(c KeywordCategory) []Keyword {
	switch c {
	case CategorySkill:
		return ck.Skills
	case CategoryCompany:
		return ck.Companies
	case CategoryJobTitle:
		return ck.JobTitles
	case CategoryIndustry:
		return ck.Industries
	case CategoryCertification:
		return ck.Certifications
	}
	return nil
}

// SetCategory replaces the keyword list for a category.
func (ck *CategorizedKeywords) SetCategory(c KeywordCategory, keywords []Keyword) {
	if keywords == nil {
		keywords = []Keyword{}
	}
	switch c {
	case CategorySkill:
		ck.Skills = keywords
	case CategoryCompany:
		ck.Companies = keywords
	case CategoryJobTitle:
		ck.JobTitles = keywords
	case CategoryIndustry:
		ck.Industries = keywords
	case CategoryCertification:
		ck.Certifications = keywords
	}
}

// Total returns the number of keywords across all categories.
func (ck *CategorizedKeywords) Total() int {
	return len(ck.Skills) + len(ck.Companies) + len(ck.JobTitles) +
		len(ck.Industries) + len(ck.Certifications)
}
