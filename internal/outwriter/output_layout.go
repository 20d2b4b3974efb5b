package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/roadmap/core/agg"
	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// undatedLabel marks milestones whose date could not be parsed.
const undatedLabel = "undated"

// kindLabel returns the kind label, colored when enabled.
func kindLabel(kind schema.MilestoneKind, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorKindLabel(kind)
	}
	return contract.GetPlainKindLabel(kind)
}

// formatMilestoneDate renders the milestone date in en-US form.
func formatMilestoneDate(m schema.PositionedMilestone) string {
	if !m.DateValid {
		return undatedLabel
	}
	return m.Date.Format(algo.DateLayout)
}

// writeLayoutTable writes one table per program followed by a summary.
func writeLayoutTable(w io.Writer, layout *schema.Layout, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "🗓️  Window: %s\n", describeWindow(layout.Window, layout.FallbackWindow)); err != nil {
		return err
	}
	labelWidth := getMaxTableLabelWidth(cfg)

	for _, program := range layout.Programs {
		if _, err := fmt.Fprintf(w, "\n📌 %s (journey order: %s)\n", program.Name, program.OrderSource); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		table.Header([]string{"Journey", "Milestone", "Kind", "Date", "Sprints", "Pos", "Stack", "Phase"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
			cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft}
		})

		var data [][]string
		for _, journey := range program.Journeys {
			for i, m := range journey.Milestones {
				left, right := algo.PhaseSpan(journey.BuildPhases[i])
				data = append(data, []string{
					journey.Name,
					contract.TruncateLabel(m.Label, labelWidth),
					kindLabel(m.Kind, cfg),
					formatMilestoneDate(m),
					strconv.FormatFloat(m.SprintRequired, 'f', -1, 64),
					fmtFloat(m.Position),
					strconv.Itoa(m.VerticalOffset),
					fmt.Sprintf("%s-%s", fmtFloat(left), fmtFloat(right)),
				})
			}
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	summary := agg.Summarize(layout)
	if _, err := fmt.Fprintf(w, "\nLaid out %d milestones (%d undated) across %d programs and %d journeys\n",
		summary.Milestones, summary.Undated, summary.Programs, summary.Journeys); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Layout completed in %v. Order backend: %s\n", duration, cfg.OrderBackend); err != nil {
		return err
	}
	return nil
}

// writeLayoutJSON writes the layout together with its summary counts.
func writeLayoutJSON(w io.Writer, layout *schema.Layout) error {
	type JSONLayout struct {
		*schema.Layout
		Summary schema.LayoutSummary `json:"summary"`
	}
	return writeJSON(w, JSONLayout{Layout: layout, Summary: agg.Summarize(layout)})
}

// layoutCSVHeader is the column set of the CSV output, one row per milestone.
var layoutCSVHeader = []string{
	"program",
	"journey",
	"journey_rank",
	"label",
	"milestone_type",
	"kind",
	"planned_date",
	"date_valid",
	"sprint_required",
	"impact_on",
	"position",
	"vertical_offset",
	"phase_start",
	"phase_end",
	"row_height",
}

// writeLayoutCSV writes one row per positioned milestone in display order.
func writeLayoutCSV(w io.Writer, layout *schema.Layout, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, layoutCSVHeader, func(csvWriter *csv.Writer) error {
		for _, program := range layout.Programs {
			for rank, journey := range program.Journeys {
				for i, m := range journey.Milestones {
					start, end := algo.PhaseSpan(journey.BuildPhases[i])
					date := ""
					if m.DateValid {
						date = m.Date.Format(algo.DateLayout)
					}
					rec := []string{
						program.Name,
						journey.Name,
						strconv.Itoa(rank),
						m.Label,
						m.MilestoneType,
						string(m.Kind),
						date,
						strconv.FormatBool(m.DateValid),
						strconv.FormatFloat(m.SprintRequired, 'f', -1, 64),
						m.ImpactOn,
						fmtFloat(m.Position),
						strconv.Itoa(m.VerticalOffset),
						fmtFloat(start),
						fmtFloat(end),
						strconv.Itoa(journey.RowHeight),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
