package extraction

import (
	"context"
	"encoding/json"

	_ "embed"

	"github.com/jonathan/contractor-intake/internal/mapping"
	"github.com/jonathan/contractor-intake/internal/prompts"
	"github.com/jonathan/contractor-intake/internal/schemas"
)

//go:embed raw_extraction.schema.json
var rawExtractionSchema string

// Extract sends normalized résumé text to the document-understanding
// service and returns its raw payload. The payload is deliberately left
// untyped: the mapping pipeline owns all shape tolerance.
func Extract(ctx context.Context, resumeText, apiKey string) (mapping.RawExtraction, error) {
	if apiKey == "" {
		return nil, &APICallError{Message: "API key is required"}
	}

	client, err := NewClient(ctx, DefaultConfig(), apiKey)
	if err != nil {
		return nil, &APICallError{Message: "failed to create extraction client", Cause: err}
	}
	defer func() { _ = client.Close() }()

	return ExtractWithClient(ctx, client, resumeText)
}

// ExtractWithClient runs one extraction against an existing client. The
// server uses this to reuse a client across requests.
func ExtractWithClient(ctx context.Context, client Client, resumeText string) (mapping.RawExtraction, error) {
	prompt := buildExtractionPrompt(resumeText)

	responseText, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "extraction request failed", Cause: err}
	}

	return DecodePayload(responseText)
}

// DecodePayload decodes a service response (or a replayed payload file)
// into a RawExtraction.
func DecodePayload(responseText string) (mapping.RawExtraction, error) {
	responseText = CleanJSONBlock(responseText)

	var raw mapping.RawExtraction
	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		return nil, &ParseError{Message: "failed to decode extraction payload", Cause: err}
	}
	return raw, nil
}

// ValidatePayload checks payload JSON against the RawExtraction schema.
// The schema is lenient on purpose; a validation error here means the
// payload is malformed enough that mapping will likely produce little,
// which callers surface as a warning rather than a failure.
func ValidatePayload(payloadJSON string) error {
	return schemas.ValidateJSONString(rawExtractionSchema, payloadJSON)
}

// buildExtractionPrompt constructs the service prompt for one résumé.
func buildExtractionPrompt(resumeText string) string {
	template := prompts.MustGet("extraction.json", "extract-resume")
	return prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})
}
