// Package prompts embeds the templates sent to the document-understanding
// service. Templates live in JSON files keyed by prompt name and use
// {{.Key}} placeholders filled in by Format.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// The embedded files are immutable, so they are parsed at most once for
// the life of the process.
var (
	loadOnce sync.Once
	files    map[string]map[string]string
	loadErr  error
)

func load() (map[string]map[string]string, error) {
	loadOnce.Do(func() {
		files = make(map[string]map[string]string)

		entries, err := promptFiles.ReadDir(".")
		if err != nil {
			loadErr = fmt.Errorf("failed to read embedded prompts: %w", err)
			return
		}
		for _, entry := range entries {
			data, err := promptFiles.ReadFile(entry.Name())
			if err != nil {
				loadErr = fmt.Errorf("failed to read prompt file %s: %w", entry.Name(), err)
				return
			}

			var prompts map[string]string
			if err := json.Unmarshal(data, &prompts); err != nil {
				loadErr = fmt.Errorf("failed to parse prompt file %s: %w", entry.Name(), err)
				return
			}
			files[entry.Name()] = prompts
		}
	})
	return files, loadErr
}

// Get returns the template stored under key in the named prompt file.
func Get(filename, key string) (string, error) {
	loaded, err := load()
	if err != nil {
		return "", err
	}

	prompts, ok := loaded[filename]
	if !ok {
		return "", fmt.Errorf("prompt file %s not found", filename)
	}
	prompt, ok := prompts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts the program cannot run without.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with values from data.
// Placeholders with no matching value are left in place.
func Format(template string, data map[string]string) string {
	for key, value := range data {
		template = strings.ReplaceAll(template, "{{."+key+"}}", value)
	}
	return template
}

// List returns the prompt keys available in the named file.
func List(filename string) ([]string, error) {
	loaded, err := load()
	if err != nil {
		return nil, err
	}

	prompts, ok := loaded[filename]
	if !ok {
		return nil, fmt.Errorf("prompt file %s not found", filename)
	}

	keys := make([]string, 0, len(prompts))
	for key := range prompts {
		keys = append(keys, key)
	}
	return keys, nil
}
