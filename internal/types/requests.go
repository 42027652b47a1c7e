package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseRequest is the request body for POST /parse. Exactly one of Text,
// HTML or URL must be provided as the résumé source.
type ParseRequest struct {
	Text string `json:"text,omitempty"`
	HTML string `json:"html,omitempty"`
	URL  string `json:"url,omitempty" validate:"omitempty,url"`
}

// Validate checks that exactly one résumé source is set.
func (r *ParseRequest) Validate() error {
	sources := 0
	if r.Text != "" {
		sources++
	}
	if r.HTML != "" {
		sources++
	}
	if r.URL != "" {
		sources++
	}
	if sources == 0 {
		return fmt.Errorf("one of text, html or url is required")
	}
	if sources > 1 {
		return fmt.Errorf("text, html and url are mutually exclusive")
	}
	return validator.New().Struct(r)
}

// CreateContractorRequest is the request body for POST /contractors: a
// reviewed record plus the keywords the reviewer kept.
type CreateContractorRequest struct {
	Record   NormalizedRecord    `json:"record" validate:"required"`
	Keywords CategorizedKeywords `json:"keywords"`
}

// Validate validates the CreateContractorRequest using the validator.
func (r *CreateContractorRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if r.Record.PopulatedFieldCount() == 0 {
		return fmt.Errorf("record has no populated fields")
	}
	return nil
}
