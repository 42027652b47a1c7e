package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Missing --out",
			args:        []string{"ingest", "--in", "resume.txt"},
			errorString: "required",
		},
		{
			name:        "No source provided",
			args:        []string{"ingest", "--out", "out"},
			errorString: "either --in or --url",
		},
		{
			name:        "Both sources provided",
			args:        []string{"ingest", "--in", "resume.txt", "--url", "https://example.com", "--out", "out"},
			errorString: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			output, err := cmd.CombinedOutput()

			require.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestIngestCommand_FileSuccess(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	inPath := filepath.Join(tmpDir, "resume.txt")
	require.NoError(t, os.WriteFile(inPath, []byte("Jane Doe\r\njane@example.com\n\n\n\nSkills"), 0644))
	outDir := filepath.Join(tmpDir, "output")

	cmd := exec.Command(binaryPath, "ingest", "--in", inPath, "--out", outDir)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "output: %s", output)

	cleaned, err := os.ReadFile(filepath.Join(outDir, "resume.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com\n\nSkills", string(cleaned))

	meta, err := os.ReadFile(filepath.Join(outDir, "resume.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(meta), `"has_email": true`)
}
