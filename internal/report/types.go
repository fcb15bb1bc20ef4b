// Package report holds the in-memory incident report draft: the data model
// for each report section, the ordered collections behind them, and the
// per-section validation rules. A draft lives for exactly one session and is
// never persisted by this package.
package report

// Severity levels aligned with common SOC triage scales.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Severities returns all severity levels in escalation order.
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// Valid reports whether s is a known severity level.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Category classifies an incident following the NIST 800-61 taxonomy.
type Category string

const (
	CategoryMalware            Category = "Malware Incident"
	CategoryPhishing           Category = "Phishing Attack"
	CategoryUnauthorizedAccess Category = "Unauthorized Access"
	CategoryDDoS               Category = "DDoS Attack"
	CategoryDataBreach         Category = "Data Breach"
	CategoryInsiderThreat      Category = "Insider Threat"
	CategoryWebAppAttack       Category = "Web Application Attack"
	CategoryRansomware         Category = "Ransomware"
	CategoryOther              Category = "Other"
)

// Categories returns all incident categories.
func Categories() []Category {
	return []Category{
		CategoryMalware, CategoryPhishing, CategoryUnauthorizedAccess,
		CategoryDDoS, CategoryDataBreach, CategoryInsiderThreat,
		CategoryWebAppAttack, CategoryRansomware, CategoryOther,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// IOCType classifies an indicator of compromise.
type IOCType string

const (
	IOCTypeIP       IOCType = "IP Address"
	IOCTypeDomain   IOCType = "Domain"
	IOCTypeURL      IOCType = "URL"
	IOCTypeFileHash IOCType = "File Hash"
	IOCTypeEmail    IOCType = "Email"
	IOCTypeUsername IOCType = "Username"
)

// IOCTypes returns all indicator types.
func IOCTypes() []IOCType {
	return []IOCType{
		IOCTypeIP, IOCTypeDomain, IOCTypeURL,
		IOCTypeFileHash, IOCTypeEmail, IOCTypeUsername,
	}
}

// Valid reports whether t is a known indicator type.
func (t IOCType) Valid() bool {
	for _, known := range IOCTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// TimelineEvent is a single event in the incident timeline. Timestamp is the
// UTC interchange string ("YYYY-MM-DD HH:MM:SS UTC") or empty; the timeline
// collection sorts by it lexicographically.
type TimelineEvent struct {
	Timestamp   string `json:"timestamp" toml:"timestamp" yaml:"timestamp"`
	Description string `json:"description" toml:"description" yaml:"description"`
	Source      string `json:"source" toml:"source" yaml:"source"`
}

// IOC is an indicator of compromise associated with the incident.
type IOC struct {
	Type    IOCType `json:"type" toml:"type" yaml:"type"`
	Value   string  `json:"value" toml:"value" yaml:"value"`
	Context string  `json:"context" toml:"context" yaml:"context"`
}

// AffectedSystem is a system impacted by the incident. At least one of
// Hostname or IPAddress must be set at creation time.
type AffectedSystem struct {
	Hostname  string `json:"hostname" toml:"hostname" yaml:"hostname"`
	IPAddress string `json:"ip_address" toml:"ip_address" yaml:"ip_address"`
	Impact    string `json:"impact" toml:"impact" yaml:"impact"`
}
