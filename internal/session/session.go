// Package session owns one in-memory incident draft for the lifetime of a
// run: validated collection mutations, sample loading, the single
// generation exchange, and the derived views a rendering surface redraws
// after every change. All errors return the session to a stable, editable
// state; nothing here retries and nothing is fatal.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirenlab/siren/internal/engine"
	"github.com/sirenlab/siren/internal/notify"
	"github.com/sirenlab/siren/internal/report"
	"github.com/sirenlab/siren/internal/timefmt"
)

// Engine is the report engine surface the session consumes.
type Engine interface {
	Generate(ctx context.Context, r *engine.Request) (*engine.Artifacts, error)
	Sample(ctx context.Context) (*report.Document, error)
}

// ErrBusy is returned when Generate is called while a previous generation
// exchange is still outstanding. The draft stays editable during that
// window; only a second submission is rejected.
var ErrBusy = errors.New("generation already in progress")

// Session wraps a single owned draft. The artifact slot holds at most one
// generation result; a successful Generate fully replaces it.
type Session struct {
	mu         sync.Mutex
	draft      *report.Draft
	eng        Engine
	notifier   notify.Notifier
	artifacts  *engine.Artifacts
	submitting bool
}

// New creates a session around an empty draft. A nil notifier discards
// notifications.
func New(eng Engine, notifier notify.Notifier) *Session {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Session{draft: report.NewDraft(), eng: eng, notifier: notifier}
}

// UpdateMetadata edits the draft's top-level fields under the session lock.
// The callback must not retain d past its return.
func (s *Session) UpdateMetadata(fn func(d *report.Draft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.draft)
}

// AddTimelineEvent normalizes the timestamp to the interchange format,
// validates, and appends. A timestamp that cannot be parsed is stored empty
// with a warning — a malformed date never blocks adding an event. Returns
// whether the event was added.
func (s *Session) AddTimelineEvent(timestamp, description, source string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := timefmt.ToInterchange(timestamp)
	if timestamp != "" && ts == "" {
		s.notifier.Notify(notify.Notification{
			Level:   notify.LevelWarning,
			Message: fmt.Sprintf("Timestamp %q could not be parsed and was left empty", timestamp),
		})
	}

	ev := report.TimelineEvent{Timestamp: ts, Description: description, Source: source}
	if err := s.draft.AddTimelineEvent(ev); err != nil {
		s.reject(err)
		return false
	}
	return true
}

// AddIOC validates and appends an indicator. Returns whether it was added.
func (s *Session) AddIOC(iocType report.IOCType, value, context string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.AddIOC(report.IOC{Type: iocType, Value: value, Context: context}); err != nil {
		s.reject(err)
		return false
	}
	return true
}

// AddAffectedSystem validates and appends a system. Returns whether it was
// added.
func (s *Session) AddAffectedSystem(hostname, ipAddress, impact string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sys := report.AffectedSystem{Hostname: hostname, IPAddress: ipAddress, Impact: impact}
	if err := s.draft.AddSystem(sys); err != nil {
		s.reject(err)
		return false
	}
	return true
}

// AddRecommendation validates and appends a recommendation. Returns whether
// it was added.
func (s *Session) AddRecommendation(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.draft.AddRecommendation(text); err != nil {
		s.reject(err)
		return false
	}
	return true
}

// RemoveTimelineEvent removes the event at position i in the current order.
// Out-of-range positions are a no-op.
func (s *Session) RemoveTimelineEvent(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Timeline.RemoveAt(i)
}

// RemoveIOC removes the indicator at position i.
func (s *Session) RemoveIOC(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.IOCs.RemoveAt(i)
}

// RemoveAffectedSystem removes the system at position i.
func (s *Session) RemoveAffectedSystem(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Systems.RemoveAt(i)
}

// RemoveRecommendation removes the recommendation at position i.
func (s *Session) RemoveRecommendation(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Recommendations.RemoveAt(i)
}

// LoadDocument replaces the whole draft with the document's contents.
// Timeline timestamps are normalized to the interchange format where they
// parse; values that do not parse are kept as-is with a warning rather than
// dropped.
func (s *Session) LoadDocument(doc report.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range doc.TimelineEvents {
		raw := doc.TimelineEvents[i].Timestamp
		if raw == "" {
			continue
		}
		if ts := timefmt.ToInterchange(raw); ts != "" {
			doc.TimelineEvents[i].Timestamp = ts
		} else {
			s.notifier.Notify(notify.Notification{
				Level:   notify.LevelWarning,
				Message: fmt.Sprintf("Timeline timestamp %q could not be parsed; chronological order is not guaranteed", raw),
			})
		}
	}
	s.draft.Load(doc)
}

// LoadSample fetches the engine's sample incident and loads it into the
// draft, replacing all current content.
func (s *Session) LoadSample(ctx context.Context) error {
	doc, err := s.eng.Sample(ctx)
	if err != nil {
		s.notifier.Notify(notify.Notification{
			Level:   notify.LevelError,
			Message: "Error: " + err.Error(),
		})
		return err
	}
	s.LoadDocument(*doc)
	s.notifier.Notify(notify.Notification{Level: notify.LevelSuccess, Message: "Sample incident loaded"})
	return nil
}

// Generate builds the request and runs the single generation exchange:
// Idle -> Submitting -> Idle. A second call while one is outstanding gets
// ErrBusy without touching the engine. Validation failure aborts before any
// network I/O. On success the returned artifacts fully replace any prior
// ones; on failure the prior artifacts are untouched.
func (s *Session) Generate(ctx context.Context) (*engine.Artifacts, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		s.notifier.Notify(notify.Notification{Level: notify.LevelWarning, Message: "Generation already in progress"})
		return nil, ErrBusy
	}
	req, err := engine.BuildRequest(s.draft)
	if err != nil {
		s.mu.Unlock()
		s.reject(err)
		return nil, err
	}
	s.submitting = true
	s.mu.Unlock()

	artifacts, err := s.eng.Generate(ctx, req)

	s.mu.Lock()
	s.submitting = false
	if err != nil {
		s.mu.Unlock()
		s.notifier.Notify(notify.Notification{Level: notify.LevelError, Message: "Error: " + err.Error()})
		return nil, err
	}
	s.artifacts = artifacts
	s.mu.Unlock()

	s.notifier.Notify(notify.Notification{
		Level:   notify.LevelSuccess,
		Message: fmt.Sprintf("Report %s generated", artifacts.IncidentID),
	})
	return artifacts, nil
}

// Artifacts returns a copy of the most recent generation result, or nil if
// none exists yet.
func (s *Session) Artifacts() *engine.Artifacts {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.artifacts == nil {
		return nil
	}
	a := *s.artifacts
	return &a
}

// Reset discards the draft and artifacts, as a fresh session would start.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = report.NewDraft()
	s.artifacts = nil
}

// reject surfaces a validation failure; the candidate entry is already
// discarded and no state changed. Caller holds the lock.
func (s *Session) reject(err error) {
	s.notifier.Notify(notify.Notification{Level: notify.LevelError, Message: err.Error()})
}
