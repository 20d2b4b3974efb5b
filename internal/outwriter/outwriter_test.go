package outwriter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/internal/parquet"
	"github.com/huangsam/roadmap/schema"
	pq "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// sampleLayout is a hand-built two-program layout over Oct 2025 to Mar 2026.
func sampleLayout() *schema.Layout {
	window := schema.TimelineWindow{Start: day(2025, time.October, 1), End: day(2026, time.March, 31)}
	return &schema.Layout{
		Window: window,
		Header: algo.QuarterHeader(window),
		Programs: []schema.ProgramLayout{
			{
				Name:        "Payments",
				OrderSource: schema.OrderOverride,
				Journeys: []schema.JourneyLayout{
					{
						Name: "Checkout & Pay",
						Milestones: []schema.PositionedMilestone{
							{Program: "Payments", Journey: "Checkout & Pay", Label: "Pilot", MilestoneType: "Checkpoint",
								Kind: schema.CheckpointKind, Index: 0, Date: day(2025, time.November, 1), DateValid: true,
								SprintRequired: 2, Position: 17.0},
							{Program: "Payments", Journey: "Checkout & Pay", Label: "GA <launch>", MilestoneType: "Key Go-Live",
								Kind: schema.KeyGoLiveKind, Index: 1, Date: day(2025, time.November, 15), DateValid: true,
								SprintRequired: 4, ImpactOn: "Retail", Position: 24.7, VerticalOffset: 1},
						},
						BuildPhases: []schema.BuildPhase{
							{Label: "Pilot", Kind: schema.CheckpointKind, MilestoneIndex: 0, StartPosition: 1.5, EndPosition: 17.0},
							{Label: "GA <launch>", Kind: schema.KeyGoLiveKind, MilestoneIndex: 1, StartPosition: 0, EndPosition: 24.7, VerticalOffset: 1},
						},
						MaxOffset: 1,
						RowHeight: 110,
					},
					{
						Name: "Refunds",
						Milestones: []schema.PositionedMilestone{
							{Program: "Payments", Journey: "Refunds", Label: "TBD", MilestoneType: "Tech Drop",
								Kind: schema.TechDropKind, Index: 2, Position: 50},
						},
						BuildPhases: []schema.BuildPhase{
							{Label: "TBD", Kind: schema.TechDropKind, MilestoneIndex: 2, StartPosition: 50, EndPosition: 50},
						},
						RowHeight: 100,
					},
				},
			},
			{
				Name:        "Lending",
				OrderSource: schema.OrderNatural,
				Journeys: []schema.JourneyLayout{
					{
						Name: "Origination",
						Milestones: []schema.PositionedMilestone{
							{Program: "Lending", Journey: "Origination", Label: "Bureau API", MilestoneType: "Critical Dependency",
								Kind: schema.CriticalDependencyKind, Index: 3, Date: day(2026, time.February, 2), DateValid: true,
								SprintRequired: 1, Position: 68.0},
						},
						BuildPhases: []schema.BuildPhase{
							{Label: "Bureau API", Kind: schema.CriticalDependencyKind, MilestoneIndex: 3, StartPosition: 60.3, EndPosition: 68.0},
						},
						RowHeight: 100,
					},
				},
			},
		},
		TotalMilestones: 4,
	}
}

func newTestConfig(output schema.OutputMode, outputFile string) *contract.Config {
	return &contract.Config{
		Output:       output,
		OutputFile:   outputFile,
		Precision:    1,
		Width:        120,
		Title:        "Q4 Plan",
		OrderBackend: schema.NoneBackend,
	}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPrintLayoutFormats(t *testing.T) {
	tests := []struct {
		output   schema.OutputMode
		contains []string
	}{
		{schema.TextOut, []string{"Payments (journey order: override)", "Checkout & Pay", "Key Go-Live", "undated", "Laid out 4 milestones (1 undated)"}},
		{schema.JSONOut, []string{`"total_milestones": 4`, `"summary"`, `"order_source": "override"`}},
		{schema.CSVOut, []string{"program,journey,journey_rank", "Payments,Refunds,1,TBD"}},
		{schema.TimelineOut, []string{"Q4 PLAN", "PAYMENTS", "★", "━"}},
		{schema.SVGOut, []string{"<svg", `id="slide-4"`, "GA &lt;launch&gt;"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.output), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "layout.out")
			cfg := newTestConfig(tt.output, path)
			require.NoError(t, PrintLayout(sampleLayout(), cfg, time.Millisecond))

			out := readOutput(t, path)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestPrintLayoutParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.parquet")
	require.NoError(t, PrintLayout(sampleLayout(), newTestConfig(schema.ParquetOut, path), 0))

	rows, err := pq.ReadFile[parquet.MilestoneRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Pilot", rows[0].Label)
	assert.Equal(t, "Lending", rows[3].Program)
}

func TestGetTerminalWidthOverride(t *testing.T) {
	assert.Equal(t, 150, GetTerminalWidth(&contract.Config{Width: 150}))
	assert.Positive(t, GetTerminalWidth(&contract.Config{}))
}

func TestGetMaxTableLabelWidth(t *testing.T) {
	tests := []struct {
		width    int
		expected int
	}{
		{width: 80, expected: 12},
		{width: 120, expected: 25},
		{width: 400, expected: 48},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, getMaxTableLabelWidth(&contract.Config{Width: tt.width}))
	}
}

func TestDescribeWindow(t *testing.T) {
	window := schema.TimelineWindow{Start: day(2025, time.July, 1), End: day(2026, time.June, 30)}
	assert.Equal(t, "Jul 1 2025 to Jun 30 2026", describeWindow(window, false))
	assert.True(t, strings.HasSuffix(describeWindow(window, true), "(fallback, no valid dates)"))
}
