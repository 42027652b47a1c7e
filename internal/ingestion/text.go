// Package ingestion turns résumé source documents into normalized plain
// text: the only cleanup applied before text is handed to the extraction
// service, and the text the regex fallbacks later scan.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jonathan/contractor-intake/internal/fetch"
)

// Patterns for the cleanup passes. Compiled once; CleanText is hot on the
// upload path.
var (
	// "Page 3" / "Page 3 of 12" lines left behind by PDF text extraction.
	pageNumberRe = regexp.MustCompile(`(?mi)^[ \t]*page[ \t]+\d+(?:[ \t]+of[ \t]+\d+)?[ \t]*$`)
	// Bare M/D/YY or M/D/YYYY lines (print headers and footers).
	bareDateRe = regexp.MustCompile(`(?m)^[ \t]*\d{1,2}/\d{1,2}/(?:\d{2}|\d{4})[ \t]*$`)
	// Three or more newlines in a row.
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
	// Runs of horizontal whitespace.
	horizontalSpaceRe = regexp.MustCompile(`[ \t]{2,}`)
	// Form-field marker glyphs: checkboxes, boxes, circles.
	formMarkerRe = regexp.MustCompile(`[☐☑☒□■◻◼○●◯]`)
	// A word split across a line wrap with a trailing hyphen.
	hyphenBreakRe = regexp.MustCompile(`([A-Za-z])-\n([A-Za-z])`)
	// Bullet glyph variants at the start of a line.
	bulletRe = regexp.MustCompile(`(?m)^[ \t]*[•·▪‣◦∙*–—-][ \t]+`)
	// Remaining whitespace runs inside a line (any Unicode space but \n).
	innerSpaceRe = regexp.MustCompile(`[^\S\n]+`)
	// A run of blank-ish lines.
	blankRunRe = regexp.MustCompile(`\n[ \t]*(?:\n[ \t]*)+`)
)

// CleanText normalizes raw extracted résumé text into canonical plain
// text. It is deterministic and total: empty input yields empty output,
// and applying it twice yields the same result as applying it once.
//
// The passes run in a fixed order because later steps assume earlier
// cleanup (bullet standardization, for example, relies on horizontal
// whitespace already being collapsed).
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings first so every pass sees plain \n.
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 1. Drop "Page N" / "Page N of M" lines.
	content = pageNumberRe.ReplaceAllString(content, "")

	// 2. Drop lines that are bare M/D/YY(YY) dates.
	content = bareDateRe.ReplaceAllString(content, "")

	// 3. Collapse 3+ consecutive newlines to exactly 2.
	content = excessNewlinesRe.ReplaceAllString(content, "\n\n")

	// 4. Collapse runs of horizontal whitespace to a single space.
	content = horizontalSpaceRe.ReplaceAllString(content, " ")

	// 5. Strip form-field marker glyphs.
	content = formMarkerRe.ReplaceAllString(content, "")

	// 6. Rejoin words hyphen-broken across a line wrap. Each rewrite
	// consumes the letter after the break, so adjacent breaks ("a-\nb-\nc")
	// need another pass; repeat until none remain.
	for hyphenBreakRe.MatchString(content) {
		content = hyphenBreakRe.ReplaceAllString(content, "${1}${2}")
	}

	// 7. Standardize leading bullet glyphs to "- ".
	content = bulletRe.ReplaceAllString(content, "- ")

	// 8. Collapse any remaining in-line whitespace runs.
	content = innerSpaceRe.ReplaceAllString(content, " ")

	// 9. A run of blank-ish lines becomes exactly one blank line.
	content = blankRunRe.ReplaceAllString(content, "\n\n")

	// 10. Trim leading and trailing whitespace.
	return strings.TrimSpace(content)
}

// IngestFromFile reads a résumé source file, converts it to plain text
// and cleans it. HTML files are converted locally; everything else is
// treated as plain text.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := string(content)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = ExtractHTMLText(text)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract text from HTML: %w", err)
		}
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, path), nil
}

// IngestFromURL fetches a résumé or profile page, extracts its main text
// and cleans it.
func IngestFromURL(ctx context.Context, urlStr string, opts *fetch.Options) (string, *Metadata, error) {
	text, err := fetch.ProfileText(ctx, urlStr, opts)
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned, urlStr), nil
}

// WriteOutput writes the cleaned text and metadata to output files for
// inspection or replay.
func WriteOutput(outDir string, cleanedText string, metadata *Metadata) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cleanedPath := filepath.Join(outDir, "resume.cleaned.txt")
	if err := os.WriteFile(cleanedPath, []byte(cleanedText), 0644); err != nil {
		return fmt.Errorf("failed to write cleaned text file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(outDir, "resume.meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	return nil
}
