package mapping

import (
	"github.com/jonathan/contractor-intake/internal/types"
)

// Domain defaults baked into every record before extraction runs. These
// are application-level values, not extracted data, so they are applied
// even when the payload is empty or malformed.
const (
	defaultAvailable      = true
	defaultLookingForWork = true
)

// Result is the outcome of mapping one raw extraction: the normalized
// record, the proposed keywords, and population counts the caller uses to
// distinguish a full parse from a partial one from nothing usable.
type Result struct {
	Record                types.NormalizedRecord    `json:"record"`
	Keywords              types.CategorizedKeywords `json:"keywords"`
	PopulatedFieldCount   int                       `json:"populated_field_count"`
	PopulatedKeywordCount int                       `json:"populated_keyword_count"`
}

// defaultRecord returns a record carrying only the domain defaults.
func defaultRecord() types.NormalizedRecord {
	return types.NormalizedRecord{
		Available:        defaultAvailable,
		LookingForWork:   defaultLookingForWork,
		PreferredContact: types.ContactMethodEmail,
	}
}

// defaultResult is what the caller sees when mapping fails outright:
// defaults only, empty categories, zero counts.
func defaultResult() Result {
	return Result{
		Record:   defaultRecord(),
		Keywords: types.NewCategorizedKeywords(),
	}
}

// Map runs the whole pipeline over one raw extraction. sourceText is the
// normalized plain text the document was extracted from, used only by the
// regex fallbacks; pass "" when it is unavailable.
//
// Map never panics outward. It runs synchronously inside the interactive
// upload flow, so any internal failure is converted into the all-defaults
// result instead of aborting the surrounding form.
func Map(raw RawExtraction, sourceText string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = defaultResult()
		}
	}()

	record := defaultRecord()
	record.FullName = ExtractText(raw[fieldFullName])
	record.Email = ExtractText(raw[fieldEmail])
	record.Phone = extractPhone(raw[fieldPhoneNumber])
	applyLocation(&record, raw[fieldLocation])
	applySummaryAndGoals(&record, raw[fieldSummary], raw[fieldGoals])

	// Regex fallbacks fill only fields structured extraction left empty;
	// they never override a structured value.
	if sourceText != "" {
		if record.Email == "" {
			record.Email = FindEmail(sourceText)
		}
		if record.Phone == "" {
			record.Phone = FindPhone(sourceText)
		}
	}

	keywords := types.NewCategorizedKeywords()
	for _, field := range categoryFields() {
		keywords.SetCategory(field.category, extractCategory(raw, field))
	}

	return Result{
		Record:                record,
		Keywords:              keywords,
		PopulatedFieldCount:   record.PopulatedFieldCount(),
		PopulatedKeywordCount: keywords.Total(),
	}
}

// extractCategory picks the extraction path for one category: the table
// shape is authoritative whenever it is present at all, and the legacy
// array shape is consulted only when the table field is entirely absent.
func extractCategory(raw RawExtraction, field categoryField) []types.Keyword {
	if table, ok := raw[field.tableField]; ok && table != nil {
		return extractFromTables(table, field)
	}
	return extractFromArray(raw[field.arrayField], field)
}
