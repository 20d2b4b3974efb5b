package algo

import (
	"testing"
	"time"

	"github.com/huangsam/roadmap/schema"
	"github.com/stretchr/testify/assert"
)

func TestQuarterHeader(t *testing.T) {
	window := schema.TimelineWindow{Start: day(2025, time.September, 1), End: day(2026, time.July, 31)}

	expected := []schema.QuarterHeaderCell{
		{Year: "2025", Quarter: "Q3", Months: []string{"SEP"}},
		{Year: "2025", Quarter: "Q4", Months: []string{"OCT", "NOV", "DEC"}},
		{Year: "2026", Quarter: "Q1", Months: []string{"JAN", "FEB", "MAR"}},
		{Year: "2026", Quarter: "Q2", Months: []string{"APR", "MAY", "JUN"}},
		{Year: "2026", Quarter: "Q3", Months: []string{"JUL"}},
	}
	assert.Equal(t, expected, QuarterHeader(window))
	assert.Equal(t,
		[]string{"SEP", "OCT", "NOV", "DEC", "JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL"},
		HeaderMonths(QuarterHeader(window)))
}

func TestQuarterHeaderShapes(t *testing.T) {
	tests := []struct {
		name     string
		window   schema.TimelineWindow
		quarters []string
		first    string
		last     string
		months   int
	}{
		{
			name:     "fallback window",
			window:   DefaultWindow(),
			quarters: []string{"Q3 2025", "Q4 2025", "Q1 2026", "Q2 2026"},
			first:    "JUL",
			last:     "JUN",
			months:   12,
		},
		{
			name:     "single day",
			window:   schema.TimelineWindow{Start: day(2025, time.May, 20), End: day(2025, time.May, 20)},
			quarters: []string{"Q2 2025"},
			first:    "MAY",
			last:     "MAY",
			months:   1,
		},
		{
			name:     "within one quarter",
			window:   schema.TimelineWindow{Start: day(2025, time.October, 3), End: day(2025, time.November, 30)},
			quarters: []string{"Q4 2025"},
			first:    "OCT",
			last:     "NOV",
			months:   2,
		},
		{
			name:     "multi year",
			window:   schema.TimelineWindow{Start: day(2024, time.December, 31), End: day(2027, time.January, 1)},
			quarters: []string{"Q4 2024", "Q1 2025", "Q2 2025", "Q3 2025", "Q4 2025", "Q1 2026", "Q2 2026", "Q3 2026", "Q4 2026", "Q1 2027"},
			first:    "DEC",
			last:     "JAN",
			months:   26,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := QuarterHeader(tt.window)
			var labels []string
			for _, cell := range cells {
				labels = append(labels, QuarterLabel(cell))
			}
			assert.Equal(t, tt.quarters, labels)

			months := HeaderMonths(cells)
			assert.Len(t, months, tt.months)
			assert.Equal(t, tt.first, months[0])
			assert.Equal(t, tt.last, months[len(months)-1])
		})
	}
}

func TestQuarterHeaderContiguous(t *testing.T) {
	window := schema.TimelineWindow{Start: day(2025, time.February, 14), End: day(2026, time.November, 2)}
	months := HeaderMonths(QuarterHeader(window))

	cursor := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	for _, label := range months {
		assert.Equal(t, MonthLabel(cursor.Month()), label)
		cursor = cursor.AddDate(0, 1, 0)
	}
	assert.Equal(t, time.December, cursor.Month())
}

func TestMonthSpans(t *testing.T) {
	t.Run("full months", func(t *testing.T) {
		window := schema.TimelineWindow{Start: day(2025, time.July, 1), End: day(2026, time.June, 30)}
		spans := MonthSpans(window)
		assert.Len(t, spans, 12)
		assert.Equal(t, 0.0, spans[0].Start)
		assert.Equal(t, 100.0, spans[11].End)
		for i := 1; i < len(spans); i++ {
			assert.InDelta(t, spans[i-1].End, spans[i].Start, 1e-9, "months must be contiguous")
		}
	})

	t.Run("clipped edges", func(t *testing.T) {
		window := schema.TimelineWindow{Start: day(2025, time.October, 16), End: day(2025, time.December, 15)}
		spans := MonthSpans(window)
		assert.Len(t, spans, 3)
		oct := spans[0].End - spans[0].Start
		nov := spans[1].End - spans[1].Start
		assert.Less(t, oct, nov)
		assert.Equal(t, 100.0, spans[2].End)
	})

	t.Run("single point", func(t *testing.T) {
		window := schema.TimelineWindow{Start: day(2025, time.October, 1), End: day(2025, time.October, 1)}
		spans := MonthSpans(window)
		assert.Equal(t, []AxisSpan{{Start: 0, End: 100}}, spans)
	})
}
