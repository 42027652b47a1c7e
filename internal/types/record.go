// Package types provides type definitions for structured data used throughout the contractor-intake system.
package types

// ContactMethodEmail is the default preferred contact method for new
// contractor records.
const ContactMethodEmail = "email"

// NormalizedRecord is the flat contractor record produced by the mapping
// pipeline. Every extracted field is optional: an empty string means the
// field could not be extracted, not that extraction failed.
//
// Availability, LookingForWork and PreferredContact are application-level
// defaults applied before any extraction runs; they never come from the
// parsed document.
type NormalizedRecord struct {
	FullName      string `json:"full_name,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"` // digits only, at most 10
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"` // short code preferred over full name
	ZipCode       string `json:"zip_code,omitempty"`
	Country       string `json:"country,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	Summary       string `json:"summary,omitempty"`
	Notes         string `json:"notes,omitempty"`

	Available        bool   `json:"available"`
	LookingForWork   bool   `json:"looking_for_work"`
	PreferredContact string `json:"preferred_contact"`
}

// PopulatedFieldCount returns the number of non-empty extracted fields.
// The default flags are excluded: they are always set and say nothing
// about how well extraction went.
func (r *NormalizedRecord) PopulatedFieldCount() int {
	fields := []string{
		r.FullName, r.Email, r.Phone,
		r.City, r.State, r.ZipCode, r.Country, r.StreetAddress,
		r.Summary, r.Notes,
	}
	count := 0
	for _, f := range fields {
		if f != "" {
			count++
		}
	}
	return count
}
