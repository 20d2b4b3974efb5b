package algo

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/huangsam/roadmap/schema"
)

// Axis constants shared by every renderer.
const (
	SprintDays       = 14   // one sprint is two weeks
	DegeneratePos    = 50.0 // single-point window and malformed dates
	MilestoneMinPos  = 3.0
	BuildPhaseMinPos = 0.0
	MaxPos           = 97.0
)

// DateLayout is the en-US date format ingestion normalizes to.
const DateLayout = "01/02/2006"

// dateLayouts are tried in order by ParseDate.
var dateLayouts = []string{
	DateLayout,
	"1/2/2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"1/2/06",
}

// ParseDate parses a calendar date string into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrMalformedDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
}

// RawPosition interpolates a date linearly onto [0, 100] without clamping.
// A single-point window maps every date to 50.
func RawPosition(date time.Time, window schema.TimelineWindow) float64 {
	span := window.End.Sub(window.Start)
	if span <= 0 {
		return DegeneratePos
	}
	return float64(date.Sub(window.Start)) / float64(span) * 100
}

// Position interpolates a date and clamps it under the given policy.
func Position(date time.Time, window schema.TimelineWindow, policy schema.PositionPolicy) float64 {
	return clampPosition(RawPosition(date, window), policy)
}

// PositionOf maps a date string to the axis. Malformed dates map to 50 and
// report false so callers can surface a data-quality warning.
func PositionOf(value string, window schema.TimelineWindow, policy schema.PositionPolicy) (float64, bool) {
	date, err := ParseDate(value)
	if err != nil {
		return DegeneratePos, false
	}
	return Position(date, window, policy), true
}

func clampPosition(pos float64, policy schema.PositionPolicy) float64 {
	lo := BuildPhaseMinPos
	if policy == schema.MilestonePolicy {
		lo = MilestoneMinPos
	}
	return math.Max(lo, math.Min(MaxPos, pos))
}

// LeadStartDate is the start of the lead-time span ending at end.
// Fractional sprints are truncated to whole days.
func LeadStartDate(end time.Time, sprints float64) time.Time {
	days := int(sprints * SprintDays)
	return end.AddDate(0, 0, -days)
}
