package session

import (
	"fmt"

	"github.com/sirenlab/siren/internal/report"
)

// View is a read-only snapshot of one collection for the rendering surface:
// the ordered items, their count, and a human count label. A surface
// redraws from a fresh view after every mutation; stale views never alias
// live state.
type View[T any] struct {
	Items []T
	Count int
	Label string
}

func newView[T any](items []T, noun string) View[T] {
	return View[T]{Items: items, Count: len(items), Label: countLabel(len(items), noun)}
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// TimelineView snapshots the timeline in chronological (timestamp string)
// order.
func (s *Session) TimelineView() View[report.TimelineEvent] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newView(s.draft.Timeline.Items(), "Timeline Event")
}

// IOCView snapshots the indicators in insertion order.
func (s *Session) IOCView() View[report.IOC] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newView(s.draft.IOCs.Items(), "IOC")
}

// SystemsView snapshots the affected systems in insertion order.
func (s *Session) SystemsView() View[report.AffectedSystem] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newView(s.draft.Systems.Items(), "Affected System")
}

// RecommendationsView snapshots the recommendations in insertion order;
// display position doubles as a 1-based ordinal.
func (s *Session) RecommendationsView() View[string] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newView(s.draft.Recommendations.Items(), "Recommendation")
}
