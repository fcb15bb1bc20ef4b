package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirenlab/siren/internal/engine"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		id   string
		ext  string
		want string
	}{
		{"IR-20250210-A3F7", "md", "IR-20250210-A3F7.md"},
		{"IR-20250210-A3F7", "json", "IR-20250210-A3F7.json"},
		{"", "md", "incident-report.md"},
		{"", "json", "incident-report.json"},
	}
	for _, tt := range tests {
		if got := Filename(tt.id, tt.ext); got != tt.want {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.id, tt.ext, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	a := &engine.Artifacts{IncidentID: "IR-20250210-A3F7", Markdown: "# Report", JSON: `{"title":"x"}`}

	paths, err := Write(dir, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("wrote %d files, want 2", len(paths))
	}

	md, err := os.ReadFile(filepath.Join(dir, "IR-20250210-A3F7.md"))
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	if string(md) != "# Report" {
		t.Errorf("markdown content = %q", md)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "IR-20250210-A3F7.json"))
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	if string(raw) != `{"title":"x"}` {
		t.Errorf("json content = %q", raw)
	}
}

func TestWrite_FallbackBasename(t *testing.T) {
	dir := t.TempDir()
	if _, err := Write(dir, &engine.Artifacts{Markdown: "# Untitled"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "incident-report.md")); err != nil {
		t.Errorf("expected incident-report.md: %v", err)
	}
}
