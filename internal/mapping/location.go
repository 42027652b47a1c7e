package mapping

import (
	"regexp"
	"strings"

	"github.com/jonathan/contractor-intake/internal/types"
)

// stateZipRe matches a "TX 78701" or "TX 78701-1234" segment: a two-letter
// state code followed by a ZIP, optionally with the +4 suffix.
var stateZipRe = regexp.MustCompile(`^([A-Z]{2})\s+(\d{5}(?:-\d{4})?)$`)

// applyLocation fills the location fields of record from the location data
// point. A structured parsed object is authoritative; without one, the raw
// string is split on commas and scanned for a state/ZIP segment.
func applyLocation(record *types.NormalizedRecord, dataPoint any) {
	dp := asMap(dataPoint)
	if dp == nil {
		return
	}

	if parsed := asMap(dp["parsed"]); parsed != nil {
		applyStructuredLocation(record, parsed)
		return
	}

	applyRawLocation(record, asString(dp["raw"]))
}

// applyStructuredLocation maps the service's structured location object.
// The short state code wins over the full state name, and the street
// address is the text before the first comma of the original input.
func applyStructuredLocation(record *types.NormalizedRecord, parsed map[string]any) {
	record.City = strings.TrimSpace(asString(parsed["city"]))

	state := asString(parsed["stateCode"])
	if state == "" {
		state = asString(parsed["state"])
	}
	record.State = strings.TrimSpace(state)

	record.ZipCode = strings.TrimSpace(asString(parsed["postalCode"]))
	record.Country = strings.TrimSpace(asString(parsed["country"]))

	if rawInput := asString(parsed["rawInput"]); rawInput != "" {
		street, _, found := strings.Cut(rawInput, ",")
		if found {
			record.StreetAddress = strings.TrimSpace(street)
		}
	}
}

// applyRawLocation parses a free-form "street, city, ST 12345" string.
// The first segment is only a street-address candidate: it is confirmed
// as the street when a later segment matches state/ZIP and the city sits
// between them; otherwise it is read as the city itself.
func applyRawLocation(record *types.NormalizedRecord, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	parts := strings.Split(raw, ",")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			segments = append(segments, trimmed)
		}
	}
	if len(segments) == 0 {
		return
	}
	if len(segments) == 1 {
		record.City = segments[0]
		return
	}

	for i := 1; i < len(segments); i++ {
		m := stateZipRe.FindStringSubmatch(segments[i])
		if m == nil {
			continue
		}
		record.State = m[1]
		record.ZipCode = m[2]
		record.City = segments[i-1]
		if i-1 > 0 {
			record.StreetAddress = segments[0]
		}
		return
	}

	// No state/ZIP segment anywhere; the leading segment is the best city
	// guess we have.
	record.City = segments[0]
}
