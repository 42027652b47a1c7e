package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/contractor-intake/internal/types"
)

func skillKeywords(names ...string) []types.Keyword {
	keywords := make([]types.Keyword, 0, len(names))
	for _, name := range names {
		keywords = append(keywords, types.NewKeyword(name, types.CategorySkill))
	}
	return keywords
}

func keywordNames(keywords []types.Keyword) []string {
	names := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		names = append(names, kw.Name)
	}
	return names
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "Case-insensitive, first occurrence wins",
			input: []string{"SQL", "sql", "Java"},
			want:  []string{"SQL", "Java"},
		},
		{
			name:  "Order preserved",
			input: []string{"Go", "Rust", "go", "Python", "RUST"},
			want:  []string{"Go", "Rust", "Python"},
		},
		{
			name:  "Trimmed before comparison",
			input: []string{"Go", " go "},
			want:  []string{"Go"},
		},
		{
			name:  "Empty names dropped",
			input: []string{"", "  ", "Go"},
			want:  []string{"Go"},
		},
		{
			name:  "No duplicates",
			input: []string{"Go", "Rust"},
			want:  []string{"Go", "Rust"},
		},
		{
			name:  "Empty input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(skillKeywords(tt.input...))
			assert.Equal(t, tt.want, keywordNames(got))
		})
	}
}

func TestMergeNew(t *testing.T) {
	existing := skillKeywords("Go", "SQL")

	tests := []struct {
		name     string
		proposed []string
		want     []string
	}{
		{
			name:     "New keywords kept",
			proposed: []string{"Rust", "Python"},
			want:     []string{"Rust", "Python"},
		},
		{
			name:     "Already present dropped case-insensitively",
			proposed: []string{"go", "SQL", "Rust"},
			want:     []string{"Rust"},
		},
		{
			name:     "Duplicates within proposed collapse",
			proposed: []string{"Rust", "rust"},
			want:     []string{"Rust"},
		},
		{
			name:     "All already present",
			proposed: []string{"Go", "sql"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeNew(existing, skillKeywords(tt.proposed...))
			assert.Equal(t, tt.want, keywordNames(got))
		})
	}
}
