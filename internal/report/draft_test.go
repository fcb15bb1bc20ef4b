package report

import (
	"reflect"
	"testing"
)

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()
	if d.Severity != string(SeverityMedium) {
		t.Errorf("Severity = %q, want %q", d.Severity, SeverityMedium)
	}
	if d.Category != string(CategoryOther) {
		t.Errorf("Category = %q, want %q", d.Category, CategoryOther)
	}
	if d.Timeline.Len() != 0 || d.IOCs.Len() != 0 || d.Systems.Len() != 0 || d.Recommendations.Len() != 0 {
		t.Error("new draft should have empty collections")
	}
}

func TestDraft_AddTrimsStoredFields(t *testing.T) {
	d := NewDraft()

	if err := d.AddIOC(IOC{Type: IOCTypeIP, Value: "  203.0.113.50  "}); err != nil {
		t.Fatalf("AddIOC: %v", err)
	}
	if got := d.IOCs.Items()[0].Value; got != "203.0.113.50" {
		t.Errorf("stored value = %q, want trimmed", got)
	}

	if err := d.AddRecommendation("  Reimage ws-042  "); err != nil {
		t.Fatalf("AddRecommendation: %v", err)
	}
	if got := d.Recommendations.Items()[0]; got != "Reimage ws-042" {
		t.Errorf("stored recommendation = %q, want trimmed", got)
	}
}

func TestDraft_AddRejectsInvalid(t *testing.T) {
	d := NewDraft()

	if err := d.AddTimelineEvent(TimelineEvent{Timestamp: "2025-02-10 08:00:00 UTC"}); err == nil {
		t.Error("expected error for event without description")
	}
	if err := d.AddSystem(AffectedSystem{Impact: "unknown"}); err == nil {
		t.Error("expected error for system without hostname or IP")
	}
	if d.Timeline.Len() != 0 || d.Systems.Len() != 0 {
		t.Error("rejected entries must not mutate collections")
	}
}

func TestDraft_TimelineSortedOnAdd(t *testing.T) {
	d := NewDraft()
	events := []TimelineEvent{
		{Timestamp: "2025-02-10 09:00:00 UTC", Description: "Beaconing observed"},
		{Timestamp: "2025-02-10 08:00:00 UTC", Description: "Phishing email delivered"},
	}
	for _, ev := range events {
		if err := d.AddTimelineEvent(ev); err != nil {
			t.Fatalf("AddTimelineEvent: %v", err)
		}
	}

	got := d.Timeline.Items()
	if got[0].Description != "Phishing email delivered" {
		t.Errorf("first event = %q, want the 08:00 event", got[0].Description)
	}
}

func TestDraft_DocumentRoundTrip(t *testing.T) {
	doc := Document{
		Title:         "Qakbot infection on finance workstation",
		Severity:      "High",
		Category:      "Malware Incident",
		Analyst:       "D. Reyes",
		DetectionDate: "2025-02-10 08:15:00 UTC",
		TimelineEvents: []TimelineEvent{
			{Timestamp: "2025-02-10 08:00:00 UTC", Description: "Phishing email delivered", Source: "Email gateway"},
			{Timestamp: "2025-02-10 09:00:00 UTC", Description: "Macro execution", Source: "EDR"},
		},
		IOCs: []IOC{
			{Type: IOCTypeIP, Value: "203.0.113.50", Context: "C2 server"},
		},
		AffectedSystems: []AffectedSystem{
			{Hostname: "ws-042", IPAddress: "10.20.30.40", Impact: "Initial infection"},
		},
		Recommendations: []string{"Block 203.0.113.50 at the perimeter"},
	}

	d := NewDraft()
	d.Load(doc)

	if got := d.Document(); !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip mismatch:\n got:  %+v\n want: %+v", got, doc)
	}
}

func TestDraft_LoadReplacesExistingState(t *testing.T) {
	d := NewDraft()
	if err := d.AddIOC(IOC{Type: IOCTypeDomain, Value: "evil.example"}); err != nil {
		t.Fatal(err)
	}
	d.Title = "stale title"

	d.Load(Document{Title: "fresh"})

	if d.Title != "fresh" {
		t.Errorf("Title = %q, want %q", d.Title, "fresh")
	}
	if d.IOCs.Len() != 0 {
		t.Errorf("IOCs.Len = %d, want 0 after full replace", d.IOCs.Len())
	}
}
