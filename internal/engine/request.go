package engine

import (
	"strings"

	"github.com/sirenlab/siren/internal/report"
	"github.com/sirenlab/siren/internal/timefmt"
)

// Request is the JSON payload POSTed to the engine's /api/generate
// endpoint. It shares the draft document's field set.
type Request report.Document

// BuildRequest projects a draft into the request the engine expects. Title
// and analyst must be non-empty after trimming, title checked first; the
// abort names the missing field. The four lifecycle dates and every
// timeline timestamp are normalized to the interchange format — timeline
// entries should already carry interchange timestamps, so this is a
// defensive re-projection. The draft itself is not modified.
func BuildRequest(d *report.Draft) (*Request, error) {
	doc := d.Document()

	if strings.TrimSpace(doc.Title) == "" {
		return nil, &report.ValidationError{Field: "title", Message: "Incident title is required"}
	}
	if strings.TrimSpace(doc.Analyst) == "" {
		return nil, &report.ValidationError{Field: "analyst", Message: "Analyst name is required"}
	}

	doc.Title = strings.TrimSpace(doc.Title)
	doc.Analyst = strings.TrimSpace(doc.Analyst)
	doc.DetectionDate = timefmt.ToInterchange(doc.DetectionDate)
	doc.ContainmentDate = timefmt.ToInterchange(doc.ContainmentDate)
	doc.EradicationDate = timefmt.ToInterchange(doc.EradicationDate)
	doc.RecoveryDate = timefmt.ToInterchange(doc.RecoveryDate)
	for i := range doc.TimelineEvents {
		doc.TimelineEvents[i].Timestamp = timefmt.ToInterchange(doc.TimelineEvents[i].Timestamp)
	}

	req := Request(doc)
	return &req, nil
}
