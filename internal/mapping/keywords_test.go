package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/contractor-intake/internal/types"
)

func skillField() categoryField {
	return categoryField{types.CategorySkill, "skillsTable", "skills", "skill"}
}

func tableWithCells(rowKey string, cells ...any) map[string]any {
	rows := make([]any, 0, len(cells))
	for _, cell := range cells {
		rows = append(rows, map[string]any{rowKey: cell})
	}
	return map[string]any{
		"parsed": map[string]any{"rows": rows},
	}
}

func TestExtractFromTable_CellsAreAtomic(t *testing.T) {
	table := tableWithCells("skill",
		map[string]any{"raw": "Project Management, Agile"},
		map[string]any{"raw": "SQL"},
	)

	got := extractFromTable(table, skillField())
	require.Len(t, got, 2)
	assert.Equal(t, "Project Management, Agile", got[0].Name, "table cells must never be split")
	assert.Equal(t, "SQL", got[1].Name)
}

func TestExtractFromTable_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		table any
		want  []string
	}{
		{
			name: "Cell entry as plain array of data points",
			table: map[string]any{
				"parsed": map[string]any{"rows": []any{
					map[string]any{"skill": []any{
						map[string]any{"raw": "Go"},
						map[string]any{"raw": "Rust"},
					}},
				}},
			},
			want: []string{"Go", "Rust"},
		},
		{
			name: "Single row object instead of array",
			table: map[string]any{
				"parsed": map[string]any{"rows": map[string]any{
					"skill": map[string]any{"raw": "Go"},
				}},
			},
			want: []string{"Go"},
		},
		{
			name:  "Table without parsed yields nothing",
			table: map[string]any{"raw": "some text"},
			want:  nil,
		},
		{
			name:  "Non-object table yields nothing",
			table: "garbage",
			want:  nil,
		},
		{
			name: "Rows with wrong key yield nothing",
			table: map[string]any{
				"parsed": map[string]any{"rows": []any{
					map[string]any{"company": map[string]any{"raw": "Acme"}},
				}},
			},
			want: nil,
		},
		{
			name: "Empty cells skipped",
			table: tableWithCells("skill",
				map[string]any{"raw": ""},
				map[string]any{"raw": "Go"},
			),
			want: []string{"Go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractFromTable(tt.table, skillField())
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, keywordNames(got))
		})
	}
}

func TestExtractFromTables_MergesAndDedupes(t *testing.T) {
	tables := []any{
		tableWithCells("skill", map[string]any{"raw": "Go"}),
		tableWithCells("skill",
			map[string]any{"raw": "Rust"},
			map[string]any{"raw": "go"},
		),
	}

	got := extractFromTables(tables, skillField())
	assert.Equal(t, []string{"Go", "Rust"}, keywordNames(got))
}

func TestExtractFromTables_SingleTable(t *testing.T) {
	table := tableWithCells("skill", map[string]any{"raw": "Go"})

	got := extractFromTables(table, skillField())
	assert.Equal(t, []string{"Go"}, keywordNames(got))
}

func TestExtractFromArray_SplitsConcatenatedEntries(t *testing.T) {
	entries := []any{
		map[string]any{"raw": "Python, React, SQL"},
	}

	got := extractFromArray(entries, skillField())
	assert.Equal(t, []string{"Python", "React", "SQL"}, keywordNames(got))
}

func TestExtractFromArray_Dedupes(t *testing.T) {
	entries := []any{
		map[string]any{"raw": "SQL, sql"},
		map[string]any{"raw": "Java"},
	}

	got := extractFromArray(entries, skillField())
	assert.Equal(t, []string{"SQL", "Java"}, keywordNames(got))
}

func TestSplitKeywordText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "Comma separated",
			text: "Python, React, SQL",
			want: []string{"Python", "React", "SQL"},
		},
		{
			name: "Double newline outranks comma",
			text: "Data, Analysis\n\nReporting, Dashboards",
			want: []string{"Data, Analysis", "Reporting, Dashboards"},
		},
		{
			name: "Newline outranks comma",
			text: "Python\nReact, SQL",
			want: []string{"Python", "React, SQL"},
		},
		{
			name: "Comma outranks semicolon",
			text: "A; B, C",
			want: []string{"A; B", "C"},
		},
		{
			name: "Semicolon separated",
			text: "Python; React",
			want: []string{"Python", "React"},
		},
		{
			name: "Pipe separated",
			text: "Python | React",
			want: []string{"Python", "React"},
		},
		{
			name: "Slash splits joined tags",
			text: "CI/CD",
			want: []string{"CI", "CD"},
		},
		{
			name: "Slash does not split URLs",
			text: "https://example.com/profile",
			want: []string{"Https://example.com/profile"},
		},
		{
			name: "Textual and joiner",
			text: "plumbing and electrical",
			want: []string{"Plumbing", "Electrical"},
		},
		{
			name: "Ampersand joiner",
			text: "plumbing & electrical",
			want: []string{"Plumbing", "Electrical"},
		},
		{
			name: "Comma outranks and joiner",
			text: "Research and Development, Testing",
			want: []string{"Research and Development", "Testing"},
		},
		{
			name: "No delimiter keeps whole string",
			text: "Project Management",
			want: []string{"Project Management"},
		},
		{
			name: "Over-long pieces dropped",
			text: strings.Repeat("x", 101) + ", SQL",
			want: []string{"SQL"},
		},
		{
			name: "Blank pieces dropped",
			text: "Python, , SQL",
			want: []string{"Python", "SQL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitKeywordText(tt.text))
		})
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Lowercase word", "python", "Python"},
		{"Already capitalized", "Python", "Python"},
		{"Acronym untouched", "SQL", "SQL"},
		{"Rest of string untouched", "jQuery", "JQuery"},
		{"Empty string", "", ""},
		{"Leading digit", "3d modeling", "3d modeling"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, capitalizeFirst(tt.input))
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	assert.True(t, looksLikeURL("https://example.com"))
	assert.True(t, looksLikeURL("www.example.com/a/b"))
	assert.True(t, looksLikeURL("http's weird but prefixed"))
	assert.False(t, looksLikeURL("CI/CD"))
	assert.False(t, looksLikeURL("TCP/IP"))
}
