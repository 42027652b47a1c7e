package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/contractor-intake/internal/fetch"
	"github.com/jonathan/contractor-intake/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a résumé from a file or URL",
	Long:  "Ingest a résumé from either a file or URL, clean the text, and write the cleaned text with metadata for inspection or later replay.",
	RunE:  runIngest,
}

var (
	ingestInFile string
	ingestURL    string
	ingestOutDir string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestInFile, "in", "i", "", "Path to résumé file (plain text or HTML)")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the résumé from")
	ingestCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")

	_ = ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestInFile == "" && ingestURL == "" {
		return fmt.Errorf("either --in or --url must be provided")
	}
	if ingestInFile != "" && ingestURL != "" {
		return fmt.Errorf("--in and --url are mutually exclusive; provide only one")
	}

	var (
		cleaned  string
		metadata *ingestion.Metadata
		err      error
	)
	if ingestInFile != "" {
		cleaned, metadata, err = ingestion.IngestFromFile(ingestInFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()
		cleaned, metadata, err = ingestion.IngestFromURL(ctx, ingestURL, fetch.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := ingestion.WriteOutput(ingestOutDir, cleaned, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Cleaned text: %s/resume.cleaned.txt\n", ingestOutDir)
	fmt.Fprintf(os.Stdout, "Metadata: %s/resume.meta.json\n", ingestOutDir)
	return nil
}
