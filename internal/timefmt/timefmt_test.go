package timefmt

import (
	"testing"
	"time"
)

func TestToInterchange_Sentinels(t *testing.T) {
	if got := ToInterchange(""); got != "" {
		t.Errorf("ToInterchange(\"\") = %q, want \"\"", got)
	}
	if got := ToInterchange("not a date"); got != "" {
		t.Errorf("ToInterchange(unparseable) = %q, want \"\"", got)
	}
}

func TestToInterchange_Idempotent(t *testing.T) {
	in := "2025-02-10 09:00:00 UTC"
	if got := ToInterchange(in); got != in {
		t.Errorf("ToInterchange(%q) = %q, want unchanged", in, got)
	}
}

func TestToInterchange_LocalInput(t *testing.T) {
	want := time.Date(2025, 2, 10, 9, 30, 0, 0, time.Local).UTC().Format("2006-01-02 15:04:05") + " UTC"
	if got := ToInterchange("2025-02-10T09:30"); got != want {
		t.Errorf("ToInterchange = %q, want %q", got, want)
	}
}

func TestToInterchange_RFC3339Input(t *testing.T) {
	if got := ToInterchange("2025-02-10T09:30:00Z"); got != "2025-02-10 09:30:00 UTC" {
		t.Errorf("ToInterchange = %q, want %q", got, "2025-02-10 09:30:00 UTC")
	}
}

func TestToEditable_Sentinels(t *testing.T) {
	if got := ToEditable(""); got != "" {
		t.Errorf("ToEditable(\"\") = %q, want \"\"", got)
	}
	if got := ToEditable("not a date"); got != "" {
		t.Errorf("ToEditable(unparseable) = %q, want \"\"", got)
	}
}

func TestToEditable_Interchange(t *testing.T) {
	want := time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC).Local().Format(EditableLayout)
	if got := ToEditable("2025-02-10 09:00:00 UTC"); got != want {
		t.Errorf("ToEditable = %q, want %q", got, want)
	}
}

func TestToDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", NoTimestamp},
		{"whitespace", "  ", NoTimestamp},
		{"interchange", "2025-02-10 09:00:00 UTC", "10 Feb 2025 09:00"},
		{"unparseable falls through", "around midnight", "around midnight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDisplay(tt.in); got != tt.want {
				t.Errorf("ToDisplay(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// The editable form truncates to minute precision, so for minute-precision
// inputs the interchange -> editable -> interchange trip must be stable.
func TestRoundTripStability(t *testing.T) {
	inputs := []string{
		"2025-02-10T09:30",
		"2025-06-01T23:45",
		"2025-02-10T09:30:00Z",
		"2025-12-31 18:00:00 UTC",
	}
	for _, in := range inputs {
		first := ToInterchange(in)
		if first == "" {
			t.Fatalf("ToInterchange(%q) = \"\", want a value", in)
		}
		second := ToInterchange(ToEditable(first))
		if second != first {
			t.Errorf("round trip of %q: %q -> %q, want stable", in, first, second)
		}
	}
}

func TestRoundTrip_TruncatesSeconds(t *testing.T) {
	got := ToInterchange(ToEditable("2025-02-10 09:30:45 UTC"))
	if got != "2025-02-10 09:30:00 UTC" {
		t.Errorf("got %q, want seconds truncated to %q", got, "2025-02-10 09:30:00 UTC")
	}
}
