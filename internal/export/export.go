// Package export persists generated report artifacts to disk using the
// engine's download naming rule.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirenlab/siren/internal/engine"
)

// Media types for the two artifact formats.
const (
	MediaTypeMarkdown = "text/markdown; charset=utf-8"
	MediaTypeJSON     = "application/json"
)

// DefaultBasename is used when the engine did not assign an incident ID.
const DefaultBasename = "incident-report"

// Filename returns the download filename for one artifact format
// ("md" or "json").
func Filename(incidentID, ext string) string {
	base := incidentID
	if base == "" {
		base = DefaultBasename
	}
	return base + "." + ext
}

// Write stores both artifacts under dir and returns the written paths,
// Markdown first. The directory is created if needed.
func Write(dir string, a *engine.Artifacts) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	files := []struct {
		name    string
		content string
	}{
		{Filename(a.IncidentID, "md"), a.Markdown},
		{Filename(a.IncidentID, "json"), a.JSON},
	}

	var paths []string
	for _, f := range files {
		p := filepath.Join(dir, f.name)
		if err := os.WriteFile(p, []byte(f.content), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", f.name, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
