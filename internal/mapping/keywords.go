package mapping

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/contractor-intake/internal/types"
)

// maxKeywordLength is the longest string accepted as a single tag. Pieces
// beyond this are parsing noise (a sentence or paragraph that leaked into
// a keyword field), not real tags.
const maxKeywordLength = 100

// categoryField ties a keyword category to its payload field names: the
// preferred table field, the legacy flat-array field, and the key under
// which table rows store their cell entries.
type categoryField struct {
	category   types.KeywordCategory
	tableField string
	arrayField string
	rowKey     string
}

// categoryFields returns the payload wiring for the five categories.
func categoryFields() []categoryField {
	return []categoryField{
		{types.CategorySkill, "skillsTable", "skills", "skill"},
		{types.CategoryCompany, "companiesTable", "companies", "company"},
		{types.CategoryJobTitle, "jobTitlesTable", "jobTitles", "jobTitle"},
		{types.CategoryIndustry, "industriesTable", "industries", "industry"},
		{types.CategoryCertification, "certificationsTable", "certifications", "certification"},
	}
}

// extractFromTable walks one table object and emits a keyword per
// non-empty cell entry. Table cells are atomic by contract, so cell text
// is never split further. A table without parsed rows yields nothing.
func extractFromTable(table any, field categoryField) []types.Keyword {
	tableMap := asMap(table)
	if tableMap == nil {
		return nil
	}
	parsed := asMap(tableMap["parsed"])
	if parsed == nil {
		return nil
	}

	var keywords []types.Keyword
	for _, row := range normalizeToList(parsed["rows"]) {
		rowMap := asMap(row)
		if rowMap == nil {
			continue
		}
		for _, cell := range normalizeToList(rowMap[field.rowKey]) {
			if text := ExtractText(cell); text != "" {
				keywords = append(keywords, types.NewKeyword(text, field.category))
			}
		}
	}
	return keywords
}

// extractFromTables merges one table or an array of tables for the same
// category into a single deduplicated keyword list.
func extractFromTables(tableOrTables any, field categoryField) []types.Keyword {
	var keywords []types.Keyword
	for _, table := range normalizeToList(tableOrTables) {
		keywords = append(keywords, extractFromTable(table, field)...)
	}
	return Dedupe(keywords)
}

// extractFromArray handles the legacy flat-array shape. Entries here may
// concatenate several tags into one string, so each extracted text is
// split before becoming keywords.
func extractFromArray(entries any, field categoryField) []types.Keyword {
	var keywords []types.Keyword
	for _, entry := range normalizeToList(entries) {
		text := ExtractText(entry)
		if text == "" {
			continue
		}
		for _, piece := range splitKeywordText(text) {
			keywords = append(keywords, types.NewKeyword(piece, field.category))
		}
	}
	return Dedupe(keywords)
}

// keywordDelimiters is the split precedence for concatenated array
// entries. The first delimiter present in the string wins; delimiters are
// never combined.
var keywordDelimiters = []string{"\n\n", "\n", ",", ";", "|"}

// splitKeywordText splits a possibly concatenated tag string, trims the
// pieces, drops empties and over-long noise, and capitalizes the first
// letter of each surviving piece for display consistency.
func splitKeywordText(text string) []string {
	pieces := splitOnFirstDelimiter(text)

	result := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" || len(piece) > maxKeywordLength {
			continue
		}
		result = append(result, capitalizeFirst(piece))
	}
	return result
}

// splitOnFirstDelimiter applies the delimiter precedence list: the slash
// is only a delimiter when the string is not a URL, and the textual
// joiners " and " / " & " rank below all punctuation.
func splitOnFirstDelimiter(text string) []string {
	for _, delim := range keywordDelimiters {
		if strings.Contains(text, delim) {
			return strings.Split(text, delim)
		}
	}
	if strings.Contains(text, "/") && !looksLikeURL(text) {
		return strings.Split(text, "/")
	}
	for _, joiner := range []string{" and ", " & "} {
		if strings.Contains(text, joiner) {
			return strings.Split(text, joiner)
		}
	}
	return []string{text}
}

// looksLikeURL reports whether a slash-containing string is a URL rather
// than a joined tag list like "CI/CD".
func looksLikeURL(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	return strings.Contains(lower, "://") ||
		strings.HasPrefix(lower, "www.") ||
		strings.HasPrefix(lower, "http")
}

// capitalizeFirst upper-cases the first letter of s, leaving the rest
// untouched so acronyms and camel-cased names survive.
func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
