// Package extraction calls the external document-understanding service
// that turns résumé text into the semi-structured RawExtraction payload.
// The service call is the single network suspend point of a parse: its
// failure is fatal to the request and never reaches the mapping pipeline.
package extraction

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for cheap passes: short documents, re-extraction retries
	TierLite ModelTier = "lite"
	// TierStandard is for full résumé extraction with structured output
	TierStandard ModelTier = "standard"
)

// Config holds the model configuration for the extraction service
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model configuration
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
