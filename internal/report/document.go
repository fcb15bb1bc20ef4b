package report

// Document is the flat serializable form of a draft: the field set shared by
// the generation request, the engine's sample response, and draft files on
// disk. All dates are interchange-format strings or empty.
type Document struct {
	Title            string           `json:"title" toml:"title" yaml:"title"`
	Severity         string           `json:"severity" toml:"severity" yaml:"severity"`
	Category         string           `json:"category" toml:"category" yaml:"category"`
	Analyst          string           `json:"analyst" toml:"analyst" yaml:"analyst"`
	Description      string           `json:"description" toml:"description" yaml:"description"`
	DetectionDate    string           `json:"detection_date" toml:"detection_date" yaml:"detection_date"`
	ContainmentDate  string           `json:"containment_date" toml:"containment_date" yaml:"containment_date"`
	EradicationDate  string           `json:"eradication_date" toml:"eradication_date" yaml:"eradication_date"`
	RecoveryDate     string           `json:"recovery_date" toml:"recovery_date" yaml:"recovery_date"`
	ExecutiveSummary string           `json:"executive_summary" toml:"executive_summary" yaml:"executive_summary"`
	TimelineEvents   []TimelineEvent  `json:"timeline_events" toml:"timeline_events" yaml:"timeline_events"`
	IOCs             []IOC            `json:"iocs" toml:"iocs" yaml:"iocs"`
	AffectedSystems  []AffectedSystem `json:"affected_systems" toml:"affected_systems" yaml:"affected_systems"`
	Recommendations  []string         `json:"recommendations" toml:"recommendations" yaml:"recommendations"`
}

// Load replaces the draft's metadata and all four collections with the
// document's contents. Fields the document does not carry load as empty
// values; callers tolerating partial documents get best-effort defaulting
// for free. The timeline re-sorts on load.
func (d *Draft) Load(doc Document) {
	d.Title = doc.Title
	d.Severity = doc.Severity
	d.Category = doc.Category
	d.Analyst = doc.Analyst
	d.Description = doc.Description
	d.DetectionDate = doc.DetectionDate
	d.ContainmentDate = doc.ContainmentDate
	d.EradicationDate = doc.EradicationDate
	d.RecoveryDate = doc.RecoveryDate
	d.ExecutiveSummary = doc.ExecutiveSummary
	d.Timeline.ReplaceAll(doc.TimelineEvents)
	d.IOCs.ReplaceAll(doc.IOCs)
	d.Systems.ReplaceAll(doc.AffectedSystems)
	d.Recommendations.ReplaceAll(doc.Recommendations)
}

// Document snapshots the draft into its flat form.
func (d *Draft) Document() Document {
	return Document{
		Title:            d.Title,
		Severity:         d.Severity,
		Category:         d.Category,
		Analyst:          d.Analyst,
		Description:      d.Description,
		DetectionDate:    d.DetectionDate,
		ContainmentDate:  d.ContainmentDate,
		EradicationDate:  d.EradicationDate,
		RecoveryDate:     d.RecoveryDate,
		ExecutiveSummary: d.ExecutiveSummary,
		TimelineEvents:   d.Timeline.Items(),
		IOCs:             d.IOCs.Items(),
		AffectedSystems:  d.Systems.Items(),
		Recommendations:  d.Recommendations.Items(),
	}
}
