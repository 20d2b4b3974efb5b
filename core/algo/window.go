package algo

import (
	"time"

	"github.com/huangsam/roadmap/schema"
)

// DefaultWindow is used when no record carries a valid date.
func DefaultWindow() schema.TimelineWindow {
	return schema.TimelineWindow{
		Start: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
}

// ComputeWindow spans the earliest and latest valid planned dates.
// The second return value is true when the fallback window was used.
func ComputeWindow(records []schema.MilestoneRecord) (schema.TimelineWindow, bool) {
	var window schema.TimelineWindow
	found := false
	for _, rec := range records {
		date, err := ParseDate(rec.PlannedDeliveryDate)
		if err != nil {
			continue
		}
		if !found || date.Before(window.Start) {
			window.Start = date
		}
		if !found || date.After(window.End) {
			window.End = date
		}
		found = true
	}
	if !found {
		return DefaultWindow(), true
	}
	return window, false
}

// NewWindow builds a window from two date strings, swapping them when reversed.
func NewWindow(start, end string) (schema.TimelineWindow, error) {
	s, err := ParseDate(start)
	if err != nil {
		return schema.TimelineWindow{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return schema.TimelineWindow{}, err
	}
	if e.Before(s) {
		s, e = e, s
	}
	return schema.TimelineWindow{Start: s, End: e}, nil
}
