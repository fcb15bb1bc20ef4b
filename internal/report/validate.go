package report

import "strings"

// ValidationError reports a required field that was empty at append or
// submit time. The message is user-facing; the candidate entry is discarded
// and no state changes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateTimelineEvent requires a non-empty description after trimming.
func ValidateTimelineEvent(ev TimelineEvent) error {
	if strings.TrimSpace(ev.Description) == "" {
		return &ValidationError{Field: "description", Message: "Event description is required"}
	}
	return nil
}

// ValidateIOC requires a non-empty value after trimming.
func ValidateIOC(ioc IOC) error {
	if strings.TrimSpace(ioc.Value) == "" {
		return &ValidationError{Field: "value", Message: "IOC value is required"}
	}
	return nil
}

// ValidateAffectedSystem requires a hostname or an IP address after trimming.
func ValidateAffectedSystem(sys AffectedSystem) error {
	if strings.TrimSpace(sys.Hostname) == "" && strings.TrimSpace(sys.IPAddress) == "" {
		return &ValidationError{Field: "hostname", Message: "Enter a hostname or an IP address"}
	}
	return nil
}

// ValidateRecommendation requires non-empty text after trimming.
func ValidateRecommendation(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "recommendation", Message: "Recommendation text is required"}
	}
	return nil
}
