// Package mapping converts the document-understanding service's
// semi-structured résumé extraction into a normalized contractor record
// plus categorized keyword proposals. Every function in this package is
// pure and tolerant: a missing or malformed payload entry degrades to an
// empty value, never to an error.
package mapping

import "strings"

// RawExtraction is the untyped payload returned by the extraction service
// for one document, decoded from JSON. Field shapes vary: scalar fields
// are data-point objects with "raw" and optional "parsed" entries, keyword
// fields come either as a table object (or array of them) or as a legacy
// flat array of data points.
type RawExtraction map[string]any

// Payload field names for the scalar data points.
const (
	fieldFullName    = "fullName"
	fieldEmail       = "email"
	fieldPhoneNumber = "phoneNumber"
	fieldSummary     = "summary"
	fieldGoals       = "goalsInterests"
	fieldLocation    = "location"
)

// asMap returns v as a JSON object, or nil if it is anything else.
func asMap(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// asString returns v as a string, or "" if it is anything else.
func asString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// normalizeToList turns a value that may be a single item or an array of
// items into a slice, so callers iterate without caring which shape the
// service sent. nil yields an empty slice.
func normalizeToList(v any) []any {
	if v == nil {
		return nil
	}
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

// ExtractText pulls the best-effort text out of a scalar data point:
// the parsed value when it is a string, otherwise the raw value,
// otherwise "". A data point that is not an object yields "".
//
// An empty parsed string is treated as present-but-empty and does not
// fall through to raw.
func ExtractText(dataPoint any) string {
	dp := asMap(dataPoint)
	if dp == nil {
		return ""
	}
	if parsed, ok := dp["parsed"]; ok {
		if s, isString := parsed.(string); isString {
			return strings.TrimSpace(s)
		}
	}
	return strings.TrimSpace(asString(dp["raw"]))
}
