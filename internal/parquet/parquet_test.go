package parquet

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/roadmap/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMilestoneRowStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(MilestoneRow))
	require.NotNil(t, s)

	expectedColumns := []string{
		"program", "journey", "journey_rank", "label", "milestone_type", "kind",
		"planned_date", "sprint_required", "impact_on", "position",
		"vertical_offset", "phase_start", "phase_end", "row_height",
	}
	for _, colName := range expectedColumns {
		_, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func sampleLayout() *schema.Layout {
	date := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	return &schema.Layout{
		Programs: []schema.ProgramLayout{{
			Name: "Payments",
			Journeys: []schema.JourneyLayout{
				{
					Name: "Checkout",
					Milestones: []schema.PositionedMilestone{
						{Label: "GA", Kind: schema.KeyGoLiveKind, Index: 0, Date: date, DateValid: true,
							SprintRequired: 4, ImpactOn: "Retail", Position: 25.3},
						{Label: "TBD", Kind: schema.CheckpointKind, Index: 1, Position: 50, VerticalOffset: 1},
					},
					BuildPhases: []schema.BuildPhase{
						{MilestoneIndex: 0, StartPosition: 10, EndPosition: 25.3},
						{MilestoneIndex: 1, StartPosition: 50, EndPosition: 50, VerticalOffset: 1},
					},
					MaxOffset: 1,
					RowHeight: 110,
				},
				{Name: "Refunds"},
			},
		}},
	}
}

func TestConvertLayout(t *testing.T) {
	rows := ConvertLayout(sampleLayout())
	require.Len(t, rows, 2)

	ga := rows[0]
	assert.Equal(t, "Payments", ga.Program)
	assert.Equal(t, "Checkout", ga.Journey)
	assert.Equal(t, int32(0), ga.JourneyRank)
	assert.Equal(t, "key", ga.Kind)
	require.NotNil(t, ga.PlannedDate)
	require.NotNil(t, ga.ImpactOn)
	assert.Equal(t, "Retail", *ga.ImpactOn)
	assert.Equal(t, 10.0, ga.PhaseStart)
	assert.Equal(t, 25.3, ga.PhaseEnd)
	assert.Equal(t, int32(110), ga.RowHeight)

	tbd := rows[1]
	assert.Nil(t, tbd.PlannedDate)
	assert.Nil(t, tbd.ImpactOn)
	assert.Equal(t, 49.5, tbd.PhaseStart)
	assert.Equal(t, 50.0, tbd.PhaseEnd)
	assert.Equal(t, int32(1), tbd.VerticalOffset)
}

func TestWriteMilestonesRoundTrip(t *testing.T) {
	rows := ConvertLayout(sampleLayout())
	var buf bytes.Buffer
	require.NoError(t, WriteMilestones(&buf, rows))

	read, err := parquet.Read[MilestoneRow](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, read, len(rows))
	assert.Equal(t, "GA", read[0].Label)
	assert.Equal(t, rows[0].PlannedDate.Unix(), read[0].PlannedDate.Unix())
	assert.Nil(t, read[1].PlannedDate)
}

func TestWriteOrdersParquet(t *testing.T) {
	updated := time.Unix(1_750_000_000, 0).UTC()
	rows := ConvertStoredOrders([]schema.StoredOrder{
		{Dataset: "d", Program: "Payments", Journeys: []string{"Refunds", "Checkout"}, Fingerprint: "fp", UpdatedAt: updated},
		{Dataset: "d", Program: "Lending", Journeys: nil},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, int32(1), rows[1].Rank)
	assert.Equal(t, "Checkout", rows[1].Journey)

	path := filepath.Join(t.TempDir(), "orders.parquet")
	require.NoError(t, WriteOrdersParquet(rows, path))

	read, err := parquet.ReadFile[OrderRow](path)
	require.NoError(t, err)
	require.Len(t, read, 2)
	assert.Equal(t, "Refunds", read[0].Journey)
	assert.True(t, updated.Equal(read[0].UpdatedAt))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteOrdersParquetBadPath(t *testing.T) {
	err := WriteOrdersParquet(nil, filepath.Join(t.TempDir(), "missing", "orders.parquet"))
	assert.Error(t, err)
}
