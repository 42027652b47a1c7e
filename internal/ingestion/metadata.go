package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/contractor-intake/internal/mapping"
)

// Metadata describes one ingested résumé document. It is stored alongside
// the parse artifacts so a reviewer can tell how much signal the source
// text carried before blaming the extraction service.
type Metadata struct {
	Source    string `json:"source,omitempty"` // file path or URL
	Timestamp string `json:"timestamp"`        // RFC3339 format
	Hash      string `json:"hash"`             // SHA256 hex digest of the cleaned text
	CharCount int    `json:"char_count"`
	WordCount int    `json:"word_count"`
	LineCount int    `json:"line_count"`
	HasEmail  bool   `json:"has_email"` // an email-shaped token appears in the text
	HasPhone  bool   `json:"has_phone"` // a phone-shaped token appears in the text
}

// NewMetadata computes metadata for cleaned résumé text.
func NewMetadata(cleanedText, source string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(cleanedText),
		CharCount: len(cleanedText),
		WordCount: len(strings.Fields(cleanedText)),
		LineCount: strings.Count(cleanedText, "\n") + 1,
		HasEmail:  mapping.FindEmail(cleanedText) != "",
		HasPhone:  mapping.FindPhone(cleanedText) != "",
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
