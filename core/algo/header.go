package algo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/roadmap/schema"
)

// QuarterOf returns the calendar quarter (1..4) of a month.
func QuarterOf(month time.Month) int {
	return (int(month)-1)/3 + 1
}

// MonthLabel is the upper-case three letter month name.
func MonthLabel(month time.Month) string {
	return strings.ToUpper(month.String()[:3])
}

// QuarterHeader lists the quarters from the one containing window.Start to the
// one containing window.End. Edge quarters only carry months inside the window.
func QuarterHeader(window schema.TimelineWindow) []schema.QuarterHeaderCell {
	start := time.Date(window.Start.Year(), window.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(window.End.Year(), window.End.Month(), 1, 0, 0, 0, 0, time.UTC)
	if end.Before(start) {
		end = start
	}

	var cells []schema.QuarterHeaderCell
	for month := start; !month.After(end); month = month.AddDate(0, 1, 0) {
		year := strconv.Itoa(month.Year())
		quarter := fmt.Sprintf("Q%d", QuarterOf(month.Month()))
		n := len(cells)
		if n == 0 || cells[n-1].Year != year || cells[n-1].Quarter != quarter {
			cells = append(cells, schema.QuarterHeaderCell{Year: year, Quarter: quarter})
			n++
		}
		cells[n-1].Months = append(cells[n-1].Months, MonthLabel(month.Month()))
	}
	return cells
}

// HeaderMonths flattens the header into its month labels.
func HeaderMonths(cells []schema.QuarterHeaderCell) []string {
	var months []string
	for _, cell := range cells {
		months = append(months, cell.Months...)
	}
	return months
}

// QuarterLabel renders a cell as "Q3 2025".
func QuarterLabel(cell schema.QuarterHeaderCell) string {
	return cell.Quarter + " " + cell.Year
}

// AxisSpan is a [Start, End] range on the axis.
type AxisSpan struct {
	Start float64
	End   float64
}

// MonthSpans returns the axis span of every header month in header order.
// Edge months are clipped to the window; a single-point window is split evenly.
func MonthSpans(window schema.TimelineWindow) []AxisSpan {
	n := len(HeaderMonths(QuarterHeader(window)))
	spans := make([]AxisSpan, n)
	if !window.End.After(window.Start) {
		for i := range spans {
			spans[i] = AxisSpan{Start: float64(i) * 100 / float64(n), End: float64(i+1) * 100 / float64(n)}
		}
		return spans
	}

	first := time.Date(window.Start.Year(), window.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := range spans {
		from := first.AddDate(0, i, 0)
		to := first.AddDate(0, i+1, 0)
		if from.Before(window.Start) {
			from = window.Start
		}
		if to.After(window.End) {
			to = window.End
		}
		spans[i] = AxisSpan{
			Start: math.Max(0, RawPosition(from, window)),
			End:   math.Min(100, RawPosition(to, window)),
		}
	}
	return spans
}
