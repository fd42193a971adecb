// Package view turns cases and snapshot series into what a reviewer sees:
// labels, local times, highlighted rows, tab counts and the advisory banner.
package view

import (
	"strconv"
	"time"

	"alerts_review/internal/models"
)

// Placeholder is shown for missing values.
const Placeholder = "—"

// DefaultTimezone is the display zone of the review UI.
const DefaultTimezone = "America/Los_Angeles"

// en-US short date plus medium time, e.g. "1/2/25, 3:04:05 PM".
const localLayout = "1/2/06, 3:04:05 PM"

// HeaterLabel renders a heater code: 1 is "On", 3 is "On (Standby)" and
// anything else, unknown codes included, is "Off".
func HeaterLabel(h models.HeaterState) string {
	switch h {
	case models.HeaterOn:
		return "On"
	case models.HeaterStandby:
		return "On (Standby)"
	default:
		return "Off"
	}
}

func PumpLabel(p models.PumpState) string {
	if p == models.PumpOn {
		return "On"
	}
	return "Off"
}

// FormatLocal renders t in loc. Zero times render as Placeholder; a nil loc
// means UTC.
func FormatLocal(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return Placeholder
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(localLayout)
}

// FormatTemp renders an optional °F reading.
func FormatTemp(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
