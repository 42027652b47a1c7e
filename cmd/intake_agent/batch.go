package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/contractor-intake/internal/extraction"
	"github.com/jonathan/contractor-intake/internal/ingestion"
	"github.com/jonathan/contractor-intake/internal/mapping"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse a directory of résumés concurrently",
	Long:  "Parse every résumé file (.txt, .html, .htm) in a directory and write one result JSON per input file.",
	RunE:  runBatch,
}

var (
	batchInDir       string
	batchOutDir      string
	batchAPIKey      string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVar(&batchInDir, "in-dir", "", "Directory containing résumé files (required)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "Output directory (required)")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Extraction service API key (default: GEMINI_API_KEY)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum concurrent parses")

	_ = batchCmd.MarkFlagRequired("in-dir")
	_ = batchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1")
	}

	files, err := resumeFiles(batchInDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no résumé files found in %s", batchInDir)
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	apiKey := resolveAPIKey(batchAPIKey)
	if apiKey == "" {
		return fmt.Errorf("API key is required (--api-key or GEMINI_API_KEY)")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Minute)
	defer cancel()

	client, err := extraction.NewClient(ctx, extraction.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create extraction client: %w", err)
	}
	defer func() { _ = client.Close() }()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	failures := make([]error, len(files))
	for i, file := range files {
		g.Go(func() error {
			if err := batchParseFile(gctx, client, file); err != nil {
				// Record the failure but keep the batch going.
				failures[i] = fmt.Errorf("%s: %w", filepath.Base(file), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for _, failure := range failures {
		if failure != nil {
			failed++
			fmt.Fprintf(os.Stderr, "Failed: %v\n", failure)
		}
	}

	fmt.Fprintf(os.Stdout, "Parsed %d/%d résumés into %s\n", len(files)-failed, len(files), batchOutDir)
	if failed > 0 {
		return fmt.Errorf("%d of %d résumés failed", failed, len(files))
	}
	return nil
}

// batchParseFile ingests, extracts and maps one file, writing the result
// next to its siblings in the output directory.
func batchParseFile(ctx context.Context, client extraction.Client, path string) error {
	cleaned, _, err := ingestion.IngestFromFile(path)
	if err != nil {
		return err
	}
	if cleaned == "" {
		return fmt.Errorf("source contains no text")
	}

	raw, err := extraction.ExtractWithClient(ctx, client, cleaned)
	if err != nil {
		return err
	}

	result := mapping.Map(raw, cleaned)

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(batchOutDir, base+".parse.json")
	if err := os.WriteFile(outPath, resultJSON, 0644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// resumeFiles lists parseable files directly inside dir.
func resumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".html", ".htm":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
