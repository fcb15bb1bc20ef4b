// Package engine is the HTTP client for a SIREN-compatible report engine:
// one generation exchange and one sample-draft fetch, each a single
// request/response with no retries. The engine owns severity scoring,
// Markdown/JSON rendering, and incident-ID assignment; this side only
// builds requests and interprets the response envelope.
package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/sirenlab/siren/internal/report"
)

const sampleCacheKey = "sample-draft"

// Client talks to one report engine endpoint.
type Client struct {
	endpoint string
	client   *http.Client
	samples  *cache.Cache
}

// NewClient creates a Client for the given base endpoint, e.g.
// "http://127.0.0.1:5000". A timeout of 0 uses a 60 second default.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
		samples:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

// envelope is the engine's response to /api/generate. success=true
// guarantees the three artifact fields are present; success=false
// guarantees error text.
type envelope struct {
	Success    bool   `json:"success"`
	Markdown   string `json:"markdown"`
	JSON       string `json:"json"`
	IncidentID string `json:"incident_id"`
	Error      string `json:"error"`
}

// Generate submits the request and returns the rendered artifacts. A
// transport failure or undecodable body yields a *NetworkError; a reachable
// engine that reports failure yields an *ApplicationError with the server's
// message.
func (c *Client) Generate(ctx context.Context, r *Request) (*Artifacts, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/generate", bytes.NewReader(data))
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("malformed engine response: %w", err)}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("engine returned status %d with no error text", resp.StatusCode)
		}
		return nil, &ApplicationError{Message: msg}
	}

	return &Artifacts{IncidentID: env.IncidentID, Markdown: env.Markdown, JSON: env.JSON}, nil
}

// Sample fetches the engine's demo incident draft. Any field the response
// omits comes back as its zero value, so partial documents load without
// failing. Responses are cached briefly so repeated loads do not re-hit
// the engine.
func (c *Client) Sample(ctx context.Context) (*report.Document, error) {
	if v, ok := c.samples.Get(sampleCacheKey); ok {
		doc := v.(report.Document)
		return &doc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/api/sample", nil)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}

	// The endpoint returns either the draft document or an error marker.
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("malformed sample response: %w", err)}
	}
	if probe.Error != "" {
		return nil, &ApplicationError{Message: probe.Error}
	}

	var doc report.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("malformed sample response: %w", err)}
	}

	c.samples.Set(sampleCacheKey, doc, cache.DefaultExpiration)
	return &doc, nil
}
