package report

import "strings"

// Draft is the complete in-memory incident report under construction:
// top-level metadata plus the four ordered collections. A draft has no
// persisted identity — it is created empty, mutated by user actions, and
// discarded when the session ends.
type Draft struct {
	Title            string
	Severity         string
	Category         string
	Analyst          string
	Description      string
	DetectionDate    string
	ContainmentDate  string
	EradicationDate  string
	RecoveryDate     string
	ExecutiveSummary string

	Timeline        *Collection[TimelineEvent]
	IOCs            *Collection[IOC]
	Systems         *Collection[AffectedSystem]
	Recommendations *Collection[string]
}

// NewDraft creates an empty draft. The timeline keeps itself sorted
// ascending by timestamp string; timestamps must already be in the
// interchange format for that order to be chronological.
func NewDraft() *Draft {
	return &Draft{
		Severity: string(SeverityMedium),
		Category: string(CategoryOther),
		Timeline: NewSortedCollection(func(a, b TimelineEvent) int {
			return strings.Compare(a.Timestamp, b.Timestamp)
		}),
		IOCs:            NewCollection[IOC](),
		Systems:         NewCollection[AffectedSystem](),
		Recommendations: NewCollection[string](),
	}
}

// AddTimelineEvent validates and appends an event; the timeline re-sorts
// after the insert.
func (d *Draft) AddTimelineEvent(ev TimelineEvent) error {
	if err := ValidateTimelineEvent(ev); err != nil {
		return err
	}
	ev.Description = strings.TrimSpace(ev.Description)
	d.Timeline.Append(ev)
	return nil
}

// AddIOC validates and appends an indicator.
func (d *Draft) AddIOC(ioc IOC) error {
	if err := ValidateIOC(ioc); err != nil {
		return err
	}
	ioc.Value = strings.TrimSpace(ioc.Value)
	d.IOCs.Append(ioc)
	return nil
}

// AddSystem validates and appends an affected system.
func (d *Draft) AddSystem(sys AffectedSystem) error {
	if err := ValidateAffectedSystem(sys); err != nil {
		return err
	}
	sys.Hostname = strings.TrimSpace(sys.Hostname)
	sys.IPAddress = strings.TrimSpace(sys.IPAddress)
	d.Systems.Append(sys)
	return nil
}

// AddRecommendation validates and appends a recommendation. The stored text
// is trimmed; its display position doubles as a 1-based ordinal.
func (d *Draft) AddRecommendation(text string) error {
	if err := ValidateRecommendation(text); err != nil {
		return err
	}
	d.Recommendations.Append(strings.TrimSpace(text))
	return nil
}
