package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vdot/internal/config"
)

const metersPerMile = 1609.34

// durationPattern accepts H:MM:SS and MM:SS race times.
var durationPattern = regexp.MustCompile(`^(?:\d+:)?[0-5]?\d:[0-5]\d$`)

// ParseDuration parses a "H:MM:SS" or "MM:SS" string into total seconds.
// The engine never sees these strings; parsing is a display-layer concern.
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if !durationPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	total := 0
	for _, part := range strings.Split(s, ":") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		total = total*60 + n
	}
	return total, nil
}

// FormatDuration renders seconds as H:MM:SS, or M:SS under an hour.
func FormatDuration(seconds int) string {
	hh := seconds / 3600
	mm := seconds / 60 % 60
	ss := seconds % 60

	if hh > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hh, mm, ss)
	}
	return fmt.Sprintf("%d:%02d", mm, ss)
}

// Units provides pace conversion and formatting based on user preferences
type Units struct {
	cfg config.DisplayConfig
}

// NewUnits creates a new Units helper with the given display config
func NewUnits(cfg config.DisplayConfig) Units {
	return Units{cfg: cfg}
}

// FormatPace formats a stored pace (seconds per kilometer) in the user's
// preferred unit.
func (u Units) FormatPace(secPerKm int) string {
	if secPerKm <= 0 {
		return "-"
	}

	secs := float64(secPerKm)
	if u.cfg.PaceUnit == "min/mi" {
		secs *= metersPerMile / 1000
	}
	return FormatDuration(int(secs + 0.5))
}

// FormatPaceRange formats the easy-zone pace band, fast end first.
func (u Units) FormatPaceRange(fastSecPerKm, slowSecPerKm int) string {
	return u.FormatPace(fastSecPerKm) + " - " + u.FormatPace(slowSecPerKm)
}

// PaceLabel returns the pace unit label ("min/km" or "min/mi")
func (u Units) PaceLabel() string {
	if u.cfg.PaceUnit == "min/mi" {
		return "min/mi"
	}
	return "min/km"
}
