package mapping

import (
	"strings"

	"github.com/jonathan/contractor-intake/internal/types"
)

// dedupeKey normalizes a keyword name for duplicate comparison.
func dedupeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Dedupe removes keywords whose trimmed, lowercased name was already seen,
// keeping the first occurrence in its original position.
func Dedupe(keywords []types.Keyword) []types.Keyword {
	seen := make(map[string]bool, len(keywords))
	result := make([]types.Keyword, 0, len(keywords))
	for _, kw := range keywords {
		key := dedupeKey(kw.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, kw)
	}
	return result
}

// MergeNew returns the proposed keywords that are not already present in
// existing, using the same case-insensitive trimmed comparison as Dedupe.
// Callers use this to avoid proposing a tag the reviewer already selected
// or that is already persisted.
func MergeNew(existing, proposed []types.Keyword) []types.Keyword {
	seen := make(map[string]bool, len(existing))
	for _, kw := range existing {
		seen[dedupeKey(kw.Name)] = true
	}

	result := make([]types.Keyword, 0, len(proposed))
	for _, kw := range proposed {
		key := dedupeKey(kw.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, kw)
	}
	return result
}
