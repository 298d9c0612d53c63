package tui

import (
	"testing"

	"vdot/internal/config"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"19:57", 1197},
		{"40:00", 2400},
		{"3:10:49", 11449},
		{"1:25:00", 5100},
		{"0:59", 59},
		{"5:00", 300},
		{" 40:00 ", 2400},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if err != nil {
				t.Fatalf("ParseDuration(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, input := range []string{"", "40", "40:0", "40:61", "abc", "1:2:3:4", "-5:00", "12:345"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseDuration(input); err == nil {
				t.Errorf("ParseDuration(%q) error = nil, want error", input)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1197, "19:57"},
		{2400, "40:00"},
		{11449, "3:10:49"},
		{5100, "1:25:00"},
		{59, "0:59"},
		{3600, "1:00:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, seconds := range []int{59, 300, 1197, 2400, 5100, 11449} {
		formatted := FormatDuration(seconds)
		parsed, err := ParseDuration(formatted)
		if err != nil {
			t.Fatalf("ParseDuration(%q) error = %v", formatted, err)
		}
		if parsed != seconds {
			t.Errorf("round trip %v -> %q -> %v", seconds, formatted, parsed)
		}
	}
}

func TestUnitsFormatPace(t *testing.T) {
	km := NewUnits(config.DisplayConfig{PaceUnit: "min/km"})
	if got := km.FormatPace(271); got != "4:31" {
		t.Errorf("FormatPace(271) = %q, want %q", got, "4:31")
	}
	if got := km.FormatPace(0); got != "-" {
		t.Errorf("FormatPace(0) = %q, want %q", got, "-")
	}

	mi := NewUnits(config.DisplayConfig{PaceUnit: "min/mi"})
	// 271 s/km is about 7:16 per mile.
	if got := mi.FormatPace(271); got != "7:16" {
		t.Errorf("FormatPace(271) in min/mi = %q, want %q", got, "7:16")
	}

	if km.PaceLabel() != "min/km" {
		t.Errorf("PaceLabel() = %q, want %q", km.PaceLabel(), "min/km")
	}
	if mi.PaceLabel() != "min/mi" {
		t.Errorf("PaceLabel() = %q, want %q", mi.PaceLabel(), "min/mi")
	}
}

func TestUnitsFormatPaceRange(t *testing.T) {
	u := NewUnits(config.DisplayConfig{PaceUnit: "min/km"})
	if got := u.FormatPaceRange(295, 334); got != "4:55 - 5:34" {
		t.Errorf("FormatPaceRange(295, 334) = %q, want %q", got, "4:55 - 5:34")
	}
}
