// Package draftfile reads and writes incident draft documents as TOML,
// YAML, or JSON files, selected by extension. Files use the same field
// names as the wire format; missing fields load as empty values.
package draftfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sirenlab/siren/internal/report"
)

// Load reads the draft document at path.
func Load(path string) (*report.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}

	var doc report.Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported draft format %q (want .toml, .yaml, or .json)", ext)
	}
	return &doc, nil
}

// Save writes the document to path in the format its extension names.
func Save(path string, doc *report.Document) error {
	var data []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		data = buf.Bytes()
	case ".yaml", ".yml":
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		data = out
	case ".json":
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", path, err)
		}
		data = append(out, '\n')
	default:
		return fmt.Errorf("unsupported draft format %q (want .toml, .yaml, or .json)", ext)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write draft: %w", err)
	}
	return nil
}
