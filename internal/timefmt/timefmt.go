// Package timefmt converts incident timestamps between the three textual
// shapes the toolkit round-trips: the minute-precision local form used for
// editing, the UTC interchange form stored and sent on the wire, and the
// human display form. Conversions are pure and never fail — a value that
// cannot be parsed degrades to an empty string or passes through unchanged,
// so a malformed date never blocks data entry or report generation.
package timefmt

import (
	"strings"
	"time"
)

const (
	// interchangeLayout is the UTC wire layout, minus its literal "UTC" tag.
	interchangeLayout = "2006-01-02 15:04:05"
	// EditableLayout is the minute-precision local form used for re-editing.
	EditableLayout = "2006-01-02T15:04"
	displayLayout  = "02 Jan 2006 15:04"
)

// NoTimestamp is displayed for entries without a timestamp.
const NoTimestamp = "No timestamp"

// localLayouts are accepted for analyst-entered local date/times, tried in
// order. Minute precision first: that is what an editable field produces.
var localLayouts = []string{
	EditableLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ToInterchange converts a local date/time string to
// "YYYY-MM-DD HH:MM:SS UTC". Values already in the interchange form are
// normalized in place, so the conversion is idempotent. Empty or
// unparseable input yields "".
func ToInterchange(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, ok := parse(s)
	if !ok {
		return ""
	}
	return t.UTC().Format(interchangeLayout) + " UTC"
}

// ToEditable converts an interchange timestamp (or any other parseable
// date string) to the minute-precision local form for re-entry in an
// editable field. Empty or unparseable input yields "".
func ToEditable(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, ok := parse(s)
	if !ok {
		return ""
	}
	return t.Local().Format(EditableLayout)
}

// ToDisplay formats an interchange timestamp for human reading
// (day-month-year, 24-hour clock, UTC). Empty input yields the NoTimestamp
// sentinel; unparseable input is returned unchanged as a fallback.
func ToDisplay(s string) string {
	if strings.TrimSpace(s) == "" {
		return NoTimestamp
	}
	t, ok := parse(s)
	if !ok {
		return s
	}
	return t.UTC().Format(displayLayout)
}

// parse accepts the interchange form (interpreted as UTC), RFC 3339, or one
// of the local-timezone entry layouts.
func parse(s string) (time.Time, bool) {
	if rest, found := strings.CutSuffix(s, " UTC"); found {
		t, err := time.ParseInLocation(interchangeLayout, rest, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
