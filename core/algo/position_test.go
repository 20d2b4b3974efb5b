package algo

import (
	"testing"
	"time"

	"github.com/huangsam/roadmap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{name: "en-US padded", value: "10/01/2025", expected: day(2025, time.October, 1)},
		{name: "en-US unpadded", value: "3/7/2026", expected: day(2026, time.March, 7)},
		{name: "iso", value: "2026-02-28", expected: day(2026, time.February, 28)},
		{name: "rfc3339", value: "2025-12-31T18:30:00Z", expected: day(2025, time.December, 31)},
		{name: "long month", value: "January 5, 2026", expected: day(2026, time.January, 5)},
		{name: "surrounding space", value: "  09/15/2025 ", expected: day(2025, time.September, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, bad := range []string{"", "soon", "13/45/2025", "2025-02-30"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrMalformedDate, bad)
	}
}

func TestRawPositionBounds(t *testing.T) {
	window := schema.TimelineWindow{Start: day(2025, time.July, 1), End: day(2026, time.June, 30)}

	assert.Equal(t, 0.0, RawPosition(window.Start, window))
	assert.Equal(t, 100.0, RawPosition(window.End, window))

	prev := -1.0
	for d := window.Start; !d.After(window.End); d = d.AddDate(0, 0, 7) {
		pos := RawPosition(d, window)
		assert.GreaterOrEqual(t, pos, 0.0)
		assert.LessOrEqual(t, pos, 100.0)
		assert.GreaterOrEqual(t, pos, prev)
		prev = pos
	}
}

func TestRawPositionDegenerateWindow(t *testing.T) {
	point := day(2025, time.November, 11)
	window := schema.TimelineWindow{Start: point, End: point}
	assert.Equal(t, 50.0, RawPosition(point, window))
	assert.Equal(t, 50.0, RawPosition(point.AddDate(1, 0, 0), window))
}

func TestPositionPolicies(t *testing.T) {
	window := schema.TimelineWindow{Start: day(2025, time.January, 1), End: day(2025, time.December, 31)}

	tests := []struct {
		name     string
		date     time.Time
		policy   schema.PositionPolicy
		expected float64
	}{
		{name: "milestone at start", date: window.Start, policy: schema.MilestonePolicy, expected: 3},
		{name: "phase at start", date: window.Start, policy: schema.BuildPhasePolicy, expected: 0},
		{name: "milestone at end", date: window.End, policy: schema.MilestonePolicy, expected: 97},
		{name: "phase at end", date: window.End, policy: schema.BuildPhasePolicy, expected: 97},
		{name: "phase before window", date: day(2024, time.June, 1), policy: schema.BuildPhasePolicy, expected: 0},
		{name: "milestone before window", date: day(2024, time.June, 1), policy: schema.MilestonePolicy, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Position(tt.date, window, tt.policy))
		})
	}
}

func TestPositionOfMalformed(t *testing.T) {
	window := DefaultWindow()
	pos, ok := PositionOf("not a date", window, schema.MilestonePolicy)
	assert.False(t, ok)
	assert.Equal(t, 50.0, pos)

	pos, ok = PositionOf("", window, schema.BuildPhasePolicy)
	assert.False(t, ok)
	assert.Equal(t, 50.0, pos)

	pos, ok = PositionOf("12/31/2025", window, schema.MilestonePolicy)
	assert.True(t, ok)
	assert.InDelta(t, 50.3, pos, 0.1)
}

func TestLeadStartDate(t *testing.T) {
	end := day(2025, time.December, 1)
	assert.Equal(t, end, LeadStartDate(end, 0))
	assert.Equal(t, day(2025, time.November, 17), LeadStartDate(end, 1))
	assert.Equal(t, day(2025, time.October, 6), LeadStartDate(end, 4))
	assert.Equal(t, day(2025, time.November, 10), LeadStartDate(end, 1.5))
}

func TestComputeWindow(t *testing.T) {
	records := []schema.MilestoneRecord{
		{PlannedDeliveryDate: "03/15/2026"},
		{PlannedDeliveryDate: "garbage"},
		{PlannedDeliveryDate: "09/01/2025"},
		{PlannedDeliveryDate: "07/31/2026"},
	}
	window, fallback := ComputeWindow(records)
	assert.False(t, fallback)
	assert.Equal(t, day(2025, time.September, 1), window.Start)
	assert.Equal(t, day(2026, time.July, 31), window.End)

	window, fallback = ComputeWindow([]schema.MilestoneRecord{{PlannedDeliveryDate: ""}})
	assert.True(t, fallback)
	assert.Equal(t, DefaultWindow(), window)

	window, fallback = ComputeWindow(nil)
	assert.True(t, fallback)
	assert.Equal(t, DefaultWindow(), window)
}

func TestNewWindowSwapsReversedDates(t *testing.T) {
	window, err := NewWindow("2026-06-30", "2025-07-01")
	require.NoError(t, err)
	assert.Equal(t, DefaultWindow(), window)

	_, err = NewWindow("nope", "2025-07-01")
	assert.ErrorIs(t, err, ErrMalformedDate)
}
