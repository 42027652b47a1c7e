// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/contractor-intake/internal/ingestion"
	"github.com/jonathan/contractor-intake/internal/mapping"
	"github.com/jonathan/contractor-intake/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of keywords to display per category
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of the normalized record.
func (p *Printer) PrintRecord(record *types.NormalizedRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	writeField := func(label, value string) {
		if value != "" {
			sb.WriteString(fmt.Sprintf("%-10s%s\n", label+":", value))
		}
	}

	writeField("Name", record.FullName)
	writeField("Email", record.Email)
	writeField("Phone", record.Phone)
	writeField("Street", record.StreetAddress)
	writeField("City", record.City)
	writeField("State", record.State)
	writeField("Zip", record.ZipCode)
	writeField("Country", record.Country)
	writeField("Summary", record.Summary)
	writeField("Notes", record.Notes)

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Available: %t  Looking: %t  Contact: %s\n",
		record.Available, record.LookingForWork, record.PreferredContact))

	p.printBox("NORMALIZED RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintKeywords outputs the categorized keywords, a few per category.
func (p *Printer) PrintKeywords(keywords *types.CategorizedKeywords) {
	if keywords == nil || keywords.Total() == 0 {
		return
	}

	labels := map[types.KeywordCategory]string{
		types.CategorySkill:         "Skills",
		types.CategoryCompany:       "Companies",
		types.CategoryJobTitle:      "Job Titles",
		types.CategoryIndustry:      "Industries",
		types.CategoryCertification: "Certifications",
	}

	var sb strings.Builder
	for _, category := range types.AllCategories() {
		items := keywords.ForCategory(category)
		if len(items) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s (%d):\n", labels[category], len(items)))
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i].Name))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintParseSummary outputs population counts for one parse result.
func (p *Printer) PrintParseSummary(result *mapping.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Populated fields:   %d\n", result.PopulatedFieldCount))
	sb.WriteString(fmt.Sprintf("Populated keywords: %d", result.PopulatedKeywordCount))

	p.printBox("PARSE SUMMARY", sb.String())
}

// PrintMetadata outputs ingestion metadata for the parsed source.
func (p *Printer) PrintMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:  %s\n", meta.Source))
	sb.WriteString(fmt.Sprintf("Chars:   %d  Words: %d  Lines: %d\n", meta.CharCount, meta.WordCount, meta.LineCount))
	sb.WriteString(fmt.Sprintf("Email:   %t  Phone: %t\n", meta.HasEmail, meta.HasPhone))
	sb.WriteString(fmt.Sprintf("SHA-256: %s", meta.Hash))

	p.printBox("SOURCE METADATA", sb.String())
}
