// Package parquet provides data structures and functions for exporting roadmap
// layouts and journey orders to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/schema"
	"github.com/parquet-go/parquet-go"
)

// MilestoneRow is one positioned milestone with its build phase, flattened.
type MilestoneRow struct {
	// Program and Journey place the milestone in the layout tree
	Program string `parquet:"program,snappy,dict"`
	Journey string `parquet:"journey,snappy,dict"`

	// JourneyRank is the display position of the journey within its program
	JourneyRank int32 `parquet:"journey_rank,snappy"`

	Label         string `parquet:"label,snappy"`
	MilestoneType string `parquet:"milestone_type,snappy,dict"`
	Kind          string `parquet:"kind,snappy,dict"`

	// PlannedDate is nil when the source date was malformed
	PlannedDate *time.Time `parquet:"planned_date,optional,snappy"`

	SprintRequired float64 `parquet:"sprint_required,snappy"`

	// ImpactOn is nil when the source row left it empty
	ImpactOn *string `parquet:"impact_on,optional,snappy"`

	Position       float64 `parquet:"position,snappy"`
	VerticalOffset int32   `parquet:"vertical_offset,snappy"`
	PhaseStart     float64 `parquet:"phase_start,snappy"`
	PhaseEnd       float64 `parquet:"phase_end,snappy"`
	RowHeight      int32   `parquet:"row_height,snappy"`
}

// OrderRow is one stored journey order.
type OrderRow struct {
	Dataset     string    `parquet:"dataset,snappy,dict"`
	Program     string    `parquet:"program,snappy,dict"`
	Rank        int32     `parquet:"rank,snappy"`
	Journey     string    `parquet:"journey,snappy"`
	Fingerprint string    `parquet:"fingerprint,snappy,dict"`
	UpdatedAt   time.Time `parquet:"updated_at,snappy"`
}

// ConvertLayout flattens a layout into milestone rows in display order.
func ConvertLayout(layout *schema.Layout) []MilestoneRow {
	var rows []MilestoneRow
	for _, program := range layout.Programs {
		for rank, journey := range program.Journeys {
			phases := make(map[int]schema.BuildPhase, len(journey.BuildPhases))
			for _, p := range journey.BuildPhases {
				phases[p.MilestoneIndex] = p
			}
			for _, m := range journey.Milestones {
				row := MilestoneRow{
					Program:        program.Name,
					Journey:        journey.Name,
					JourneyRank:    int32(rank),
					Label:          m.Label,
					MilestoneType:  m.MilestoneType,
					Kind:           string(m.Kind),
					SprintRequired: m.SprintRequired,
					Position:       m.Position,
					VerticalOffset: int32(m.VerticalOffset),
					RowHeight:      int32(journey.RowHeight),
				}
				if m.DateValid {
					date := m.Date
					row.PlannedDate = &date
				}
				if m.ImpactOn != "" {
					impact := m.ImpactOn
					row.ImpactOn = &impact
				}
				if p, ok := phases[m.Index]; ok {
					row.PhaseStart, row.PhaseEnd = algo.PhaseSpan(p)
				}
				rows = append(rows, row)
			}
		}
	}
	return rows
}

// ConvertStoredOrders expands stored orders into one row per journey.
func ConvertStoredOrders(stored []schema.StoredOrder) []OrderRow {
	var rows []OrderRow
	for _, order := range stored {
		for rank, journey := range order.Journeys {
			rows = append(rows, OrderRow{
				Dataset:     order.Dataset,
				Program:     order.Program,
				Rank:        int32(rank),
				Journey:     journey,
				Fingerprint: order.Fingerprint,
				UpdatedAt:   order.UpdatedAt,
			})
		}
	}
	return rows
}

// WriteMilestones writes milestone rows to w.
func WriteMilestones(w io.Writer, rows []MilestoneRow) error {
	return writeRows(w, rows)
}

// WriteOrdersParquet writes order rows to a Parquet file.
func WriteOrdersParquet(rows []OrderRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return writeRows(file, rows)
}

// writeRows writes rows using the schema derived from T's struct tags.
func writeRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
