package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/contractor-intake/internal/extraction"
	"github.com/jonathan/contractor-intake/internal/fetch"
	"github.com/jonathan/contractor-intake/internal/ingestion"
	"github.com/jonathan/contractor-intake/internal/mapping"
	"github.com/jonathan/contractor-intake/internal/observability"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse one résumé into a normalized contractor record",
	Long:  "Parse a résumé from a file, URL or saved extraction payload, map it to a normalized record with categorized keywords, and print or save the result.",
	RunE:  runParse,
}

var (
	parseInFile  string
	parseURL     string
	parseRawJSON string
	parseOutDir  string
	parseAPIKey  string
	parseVerbose bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInFile, "in", "i", "", "Path to résumé file (plain text or HTML)")
	parseCmd.Flags().StringVarP(&parseURL, "url", "u", "", "URL to fetch the résumé from")
	parseCmd.Flags().StringVar(&parseRawJSON, "raw-json", "", "Path to a saved extraction payload (skips the extraction service)")
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Output directory (default: print to stdout)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Extraction service API key (default: GEMINI_API_KEY)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print parse summaries")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	sources := 0
	for _, s := range []string{parseInFile, parseURL, parseRawJSON} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("one of --in, --url or --raw-json must be provided")
	}
	if sources > 1 {
		return fmt.Errorf("--in, --url and --raw-json are mutually exclusive; provide only one")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	result, metadata, err := parseOne(ctx, parseInFile, parseURL, parseRawJSON, resolveAPIKey(parseAPIKey))
	if err != nil {
		return err
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintMetadata(metadata)
		printer.PrintRecord(&result.Record)
		printer.PrintKeywords(&result.Keywords)
		printer.PrintParseSummary(result)
	}

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if parseOutDir == "" {
		fmt.Fprintln(os.Stdout, string(resultJSON))
		return nil
	}

	if err := os.MkdirAll(parseOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	resultPath := filepath.Join(parseOutDir, "parse_result.json")
	if err := os.WriteFile(resultPath, resultJSON, 0644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Result: %s\n", resultPath)
	return nil
}

// parseOne runs the full parse for a single source. Exactly one of inFile,
// urlStr and rawJSONPath must be set.
func parseOne(ctx context.Context, inFile, urlStr, rawJSONPath, apiKey string) (*mapping.Result, *ingestion.Metadata, error) {
	// Replay path: a saved payload, no source text for regex fallbacks.
	if rawJSONPath != "" {
		payload, err := os.ReadFile(rawJSONPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read payload file: %w", err)
		}

		warnOnInvalidPayload(string(payload))

		raw, err := extraction.DecodePayload(string(payload))
		if err != nil {
			return nil, nil, err
		}

		result := mapping.Map(raw, "")
		return &result, nil, nil
	}

	var (
		cleaned  string
		metadata *ingestion.Metadata
		err      error
	)
	if inFile != "" {
		cleaned, metadata, err = ingestion.IngestFromFile(inFile)
	} else {
		cleaned, metadata, err = ingestion.IngestFromURL(ctx, urlStr, fetch.DefaultOptions())
	}
	if err != nil {
		return nil, nil, err
	}
	if cleaned == "" {
		return nil, nil, fmt.Errorf("source contains no text")
	}

	raw, err := extraction.Extract(ctx, cleaned, apiKey)
	if err != nil {
		return nil, nil, err
	}

	if payloadJSON, marshalErr := json.Marshal(raw); marshalErr == nil {
		warnOnInvalidPayload(string(payloadJSON))
	}

	result := mapping.Map(raw, cleaned)
	return &result, metadata, nil
}

// warnOnInvalidPayload surfaces schema problems without failing the parse:
// mapping tolerates malformed payloads, so validation is advisory.
func warnOnInvalidPayload(payloadJSON string) {
	if err := extraction.ValidatePayload(payloadJSON); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: payload failed schema validation: %v\n", err)
	}
}

// resolveAPIKey prefers the flag over the environment.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}
