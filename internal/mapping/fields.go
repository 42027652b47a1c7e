package mapping

import (
	"strings"

	"github.com/jonathan/contractor-intake/internal/types"
)

// maxPhoneDigits is the longest phone value stored: a US national number.
// Anything longer carries a country code prefix that gets dropped.
const maxPhoneDigits = 10

// extractPhone reduces a phone data point to a digits-only string of at
// most ten digits. A structured parsed object wins over the raw string;
// within it, nationalNumber is preferred over formattedNumber. Fewer than
// ten digits are stored as-is rather than rejected.
func extractPhone(dataPoint any) string {
	dp := asMap(dataPoint)
	if dp == nil {
		return ""
	}

	candidate := ""
	if parsed := asMap(dp["parsed"]); parsed != nil {
		candidate = asString(parsed["nationalNumber"])
		if candidate == "" {
			candidate = asString(parsed["formattedNumber"])
		}
	}
	if candidate == "" {
		candidate = ExtractText(dataPoint)
	}

	return normalizePhoneDigits(candidate)
}

// normalizePhoneDigits strips everything but digits and keeps the last
// ten, discarding a leading country code when present.
func normalizePhoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) > maxPhoneDigits {
		digits = digits[len(digits)-maxPhoneDigits:]
	}
	return digits
}

// applySummaryAndGoals fills Summary and Notes from the summary and
// goals/interests data points. Goals text stands in for a missing summary;
// when both are present it is kept separately in Notes so the summary is
// never overwritten.
func applySummaryAndGoals(record *types.NormalizedRecord, summaryDP, goalsDP any) {
	summary := ExtractText(summaryDP)
	goals := ExtractText(goalsDP)

	switch {
	case summary == "" && goals != "":
		record.Summary = goals
	case summary != "":
		record.Summary = summary
		if goals != "" {
			record.Notes = goals
		}
	}
}
