// Package preview serves a generated report on a local listener so the
// analyst can review it in a browser. The Markdown artifact is rendered to
// HTML; both raw artifacts are downloadable with their canonical filenames.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/sirenlab/siren/internal/engine"
	"github.com/sirenlab/siren/internal/export"
)

//go:embed templates/preview.html.tmpl
var templates embed.FS

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Server serves the most recently generated artifacts on 127.0.0.1.
type Server struct {
	mu         sync.RWMutex
	html       string
	artifacts  *engine.Artifacts
	tmpl       *template.Template
	httpServer *http.Server
}

// New creates a Server with the embedded page template. Artifacts are
// installed with SetArtifacts before or after Start.
func New() (*Server, error) {
	tmpl, err := template.ParseFS(templates, "templates/preview.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &Server{tmpl: tmpl}, nil
}

// SetArtifacts renders the Markdown artifact and installs the result as the
// current document, replacing any previous one (thread-safe).
func (s *Server) SetArtifacts(a *engine.Artifacts) error {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(a.Markdown), &body); err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	data := struct {
		IncidentID string
		Body       template.HTML
	}{
		IncidentID: a.IncidentID,
		Body:       template.HTML(body.String()),
	}
	var page bytes.Buffer
	if err := s.tmpl.Execute(&page, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	s.mu.Lock()
	s.artifacts = a
	s.html = page.String()
	s.mu.Unlock()
	return nil
}

// Start begins listening on 127.0.0.1:port (0 = OS-assigned). Returns
// "host:port".
func (s *Server) Start(port int) (string, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/raw/markdown", s.handleRawMarkdown)
	mux.HandleFunc("/raw/json", s.handleRawJSON)
	mux.HandleFunc("/", s.handlePage)

	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return "", fmt.Errorf("listen: %w", err)
	}

	s.httpServer = &http.Server{Handler: mux}
	go s.httpServer.Serve(ln) //nolint:errcheck

	return ln.Addr().String(), nil
}

// Stop shuts the server down.
func (s *Server) Stop() {
	if s.httpServer != nil {
		s.httpServer.Close()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	html := s.html
	s.mu.RUnlock()

	if html == "" {
		http.Error(w, "report not ready", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
}

func (s *Server) handleRawMarkdown(w http.ResponseWriter, r *http.Request) {
	s.serveRaw(w, "md", export.MediaTypeMarkdown, func(a *engine.Artifacts) string { return a.Markdown })
}

func (s *Server) handleRawJSON(w http.ResponseWriter, r *http.Request) {
	s.serveRaw(w, "json", export.MediaTypeJSON, func(a *engine.Artifacts) string { return a.JSON })
}

func (s *Server) serveRaw(w http.ResponseWriter, ext, mediaType string, pick func(*engine.Artifacts) string) {
	s.mu.RLock()
	a := s.artifacts
	s.mu.RUnlock()

	if a == nil {
		http.Error(w, "report not ready", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(a.IncidentID, ext)))
	fmt.Fprint(w, pick(a))
}

// OpenBrowser opens the URL in the system default browser. Errors are
// silently ignored — this is best-effort.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux + others
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
