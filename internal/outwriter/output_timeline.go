package outwriter

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
)

// Timeline geometry in terminal cells.
const (
	laneLabelWidth = 18
	minTrackWidth  = 24
)

// Terminal palette for the timeline view.
var (
	timelineHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	timelineDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	timelinePhaseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(contract.BuildPhaseHex))
)

// kindStyle returns the marker style of a milestone kind.
func kindStyle(kind schema.MilestoneKind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(contract.GetKindHex(kind))).Bold(true)
}

// timelineCell is one character of a lane with its style.
type timelineCell struct {
	r     rune
	style *lipgloss.Style
}

// timelineRenderer draws lanes onto a fixed-width track.
type timelineRenderer struct {
	trackWidth int
	colors     bool
}

// newTimelineRenderer sizes the track to the terminal.
func newTimelineRenderer(termWidth int, colors bool) *timelineRenderer {
	return &timelineRenderer{trackWidth: max(minTrackWidth, termWidth-laneLabelWidth-1), colors: colors}
}

// paint renders text with a style when colors are on.
func (r *timelineRenderer) paint(style lipgloss.Style, text string) string {
	if !r.colors {
		return text
	}
	return style.Render(text)
}

// column maps an axis position in [0,100] to a track column.
func (r *timelineRenderer) column(pos float64) int {
	col := int(math.Round(pos / 100 * float64(r.trackWidth-1)))
	return max(0, min(col, r.trackWidth-1))
}

// fit pads or truncates text to exactly width cells.
func fit(text string, width int) string {
	runes := []rune(text)
	if len(runes) > width {
		return string(runes[:width])
	}
	return text + strings.Repeat(" ", width-len(runes))
}

// headerLines renders the quarter row and the month row. Labels start at
// the column of their first day.
func (r *timelineRenderer) headerLines(cells []schema.QuarterHeaderCell, spans []algo.AxisSpan) []string {
	quarterRow := []rune(strings.Repeat(" ", r.trackWidth))
	monthRow := []rune(strings.Repeat(" ", r.trackWidth))
	i := 0
	for _, cell := range cells {
		if i >= len(spans) {
			break
		}
		placeLabel(quarterRow, r.column(spans[i].Start), "│"+algo.QuarterLabel(cell))
		for _, month := range cell.Months {
			if i < len(spans) {
				placeLabel(monthRow, r.column(spans[i].Start), month)
			}
			i++
		}
	}
	pad := strings.Repeat(" ", laneLabelWidth+1)
	return []string{
		pad + r.paint(timelineHeaderStyle, string(quarterRow)),
		pad + r.paint(timelineDimStyle, string(monthRow)),
	}
}

// placeLabel writes text into row from col, cut at the row end.
func placeLabel(row []rune, col int, text string) {
	for _, c := range text {
		if col >= len(row) {
			return
		}
		row[col] = c
		col++
	}
}

// laneLines renders one journey as MaxOffset+1 stacked rows.
func (r *timelineRenderer) laneLines(journey schema.JourneyLayout) []string {
	rows := make([][]timelineCell, journey.MaxOffset+1)
	for i := range rows {
		rows[i] = make([]timelineCell, r.trackWidth)
		for j := range rows[i] {
			rows[i][j] = timelineCell{r: '·', style: &timelineDimStyle}
		}
	}

	for _, phase := range journey.BuildPhases {
		left, right := algo.PhaseSpan(phase)
		row := rows[phase.VerticalOffset]
		for col := r.column(left); col <= r.column(right); col++ {
			row[col] = timelineCell{r: '━', style: &timelinePhaseStyle}
		}
	}
	for _, m := range journey.Milestones {
		style := kindStyle(m.Kind)
		rows[m.VerticalOffset][r.column(m.Position)] = timelineCell{r: []rune(contract.GetKindSymbol(m.Kind))[0], style: &style}
	}

	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		label := ""
		if i == 0 {
			label = contract.TruncateLabel(journey.Name, laneLabelWidth)
		}
		lines = append(lines, fit(label, laneLabelWidth)+" "+r.renderRow(row))
	}
	return lines
}

// renderRow joins a row, styling runs of cells that share a style.
func (r *timelineRenderer) renderRow(row []timelineCell) string {
	var sb strings.Builder
	var run strings.Builder
	var current *lipgloss.Style
	flush := func() {
		if run.Len() > 0 && current != nil {
			sb.WriteString(r.paint(*current, run.String()))
		}
		run.Reset()
	}
	for _, cell := range row {
		if cell.style != current {
			flush()
			current = cell.style
		}
		run.WriteRune(cell.r)
	}
	flush()
	return sb.String()
}

// milestoneLegend lists the milestones of one lane below it.
func (r *timelineRenderer) milestoneLegend(journey schema.JourneyLayout) string {
	parts := make([]string, 0, len(journey.Milestones))
	for _, m := range journey.Milestones {
		date := undatedLabel
		if m.DateValid {
			date = m.Date.Format("Jan 2")
		}
		parts = append(parts, fmt.Sprintf("%s %s (%s)", r.paint(kindStyle(m.Kind), contract.GetKindSymbol(m.Kind)), m.Label, date))
	}
	return strings.Repeat(" ", laneLabelWidth+1) + strings.Join(parts, r.paint(timelineDimStyle, " · "))
}

// writeTimeline draws the layout as a terminal timeline.
func writeTimeline(w io.Writer, layout *schema.Layout, cfg *contract.Config) error {
	r := newTimelineRenderer(GetTerminalWidth(cfg), cfg.UseColors)

	var lines []string
	lines = append(lines, r.paint(timelineHeaderStyle, strings.ToUpper(deckTitle(cfg))))
	lines = append(lines, r.paint(timelineDimStyle, describeWindow(layout.Window, layout.FallbackWindow)), "")
	header := r.headerLines(layout.Header, algo.MonthSpans(layout.Window))

	for _, program := range layout.Programs {
		name := strings.ToUpper(program.Name)
		lines = append(lines, r.paint(timelineHeaderStyle, name), r.paint(timelineDimStyle, strings.Repeat("─", len([]rune(name)))))
		lines = append(lines, header...)
		for _, journey := range program.Journeys {
			lines = append(lines, r.laneLines(journey)...)
			if len(journey.Milestones) > 0 {
				lines = append(lines, r.milestoneLegend(journey))
			}
		}
		lines = append(lines, "")
	}
	lines = append(lines, r.legend())

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// legend explains marker symbols and the phase bar.
func (r *timelineRenderer) legend() string {
	parts := make([]string, 0, len(schema.AllMilestoneKinds)+1)
	for _, kind := range schema.AllMilestoneKinds {
		parts = append(parts, r.paint(kindStyle(kind), contract.GetKindSymbol(kind))+" "+contract.GetPlainKindLabel(kind))
	}
	parts = append(parts, r.paint(timelinePhaseStyle, "━━")+" "+contract.BuildPhaseLabel)
	return strings.Join(parts, "   ")
}
