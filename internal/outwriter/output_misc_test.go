package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintHeader(t *testing.T) {
	layout := sampleLayout()

	t.Run("text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "header.txt")
		require.NoError(t, PrintHeader(layout.Window, layout.Header, newTestConfig(schema.TextOut, path)))
		out := readOutput(t, path)
		assert.Contains(t, out, "Oct 1 2025 to Mar 31 2026")
		assert.Contains(t, out, "Q4 2025")
		assert.NotContains(t, out, "Q 4")
		assert.Contains(t, out, "JAN FEB MAR")
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "header.json")
		require.NoError(t, PrintHeader(layout.Window, layout.Header, newTestConfig(schema.JSONOut, path)))
		var got struct {
			Quarters []schema.QuarterHeaderCell `json:"quarters"`
			Months   []string                   `json:"months"`
		}
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, path)), &got))
		assert.Len(t, got.Quarters, 2)
		assert.Equal(t, []string{"OCT", "NOV", "DEC", "JAN", "FEB", "MAR"}, got.Months)
	})

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "header.csv")
		require.NoError(t, PrintHeader(layout.Window, layout.Header, newTestConfig(schema.CSVOut, path)))
		records, err := csv.NewReader(strings.NewReader(readOutput(t, path))).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 7)
		assert.Equal(t, []string{"2026", "Q1", "JAN"}, records[4])
	})

	t.Run("unsupported", func(t *testing.T) {
		err := PrintHeader(layout.Window, layout.Header, newTestConfig(schema.SVGOut, ""))
		assert.Error(t, err)
	})
}

func TestPrintSprintEstimateText(t *testing.T) {
	tests := []struct {
		size     string
		format   schema.SizeFormat
		contains []string
	}{
		{"xs", schema.RangeFormat, []string{"XS (range): 1–2 sprints"}},
		{"S", schema.MinMaxFormat, []string{"S (minmax): min=2 max=3"}},
		{"m", schema.AverageFormat, []string{"M (average): 3.5"}},
		{"XXL", schema.AverageFormat, []string{"XXL (average): undefined"}},
		{"xxl", schema.MaxFormat, []string{"XXL (max): Infinity"}},
		{"XXL", schema.RawFormat, []string{"XXL (XXL): 8+ sprints", "Greenfield platform", "broken down"}},
	}

	for _, tt := range tests {
		t.Run(tt.size+"/"+string(tt.format), func(t *testing.T) {
			result, err := algo.SprintsRequired(tt.size, tt.format)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "size.txt")
			require.NoError(t, PrintSprintEstimate(tt.size, tt.format, result, newTestConfig(schema.TextOut, path)))
			out := readOutput(t, path)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestPrintSprintEstimateJSON(t *testing.T) {
	result, err := algo.SprintsRequired("XXL", schema.AverageFormat)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "size.json")
	require.NoError(t, PrintSprintEstimate("xxl", schema.AverageFormat, result, newTestConfig(schema.JSONOut, path)))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(readOutput(t, path)), &got))
	assert.Equal(t, "XXL", got["size"])
	assert.Equal(t, "average", got["format"])
	assert.Nil(t, got["result"])
}

func TestPrintSprintEstimateCSV(t *testing.T) {
	result, err := algo.SprintsRequired("L", schema.MinMaxFormat)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "size.csv")
	require.NoError(t, PrintSprintEstimate("L", schema.MinMaxFormat, result, newTestConfig(schema.CSVOut, path)))
	records, err := csv.NewReader(strings.NewReader(readOutput(t, path))).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"size", "format", "result"}, {"L", "minmax", "min=4 max=6"}}, records)
}

func TestPrintSprintEstimateInvalidSize(t *testing.T) {
	err := PrintSprintEstimate("huge", schema.RangeFormat, "", newTestConfig(schema.TextOut, ""))
	assert.ErrorIs(t, err, algo.ErrInvalidSize)
}

func TestPrintJourneyOrders(t *testing.T) {
	layout := sampleLayout()

	t.Run("text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "orders.txt")
		require.NoError(t, PrintJourneyOrders(layout, newTestConfig(schema.TextOut, path)))
		out := readOutput(t, path)
		assert.Contains(t, out, "Payments (override)")
		assert.Contains(t, out, "  1. Refunds")
		assert.Contains(t, out, "Lending (natural)")
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "orders.json")
		require.NoError(t, PrintJourneyOrders(layout, newTestConfig(schema.JSONOut, path)))
		var got []journeyOrderView
		require.NoError(t, json.Unmarshal([]byte(readOutput(t, path)), &got))
		require.Len(t, got, 2)
		assert.Equal(t, []string{"Checkout & Pay", "Refunds"}, got[0].Journeys)
	})

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "orders.csv")
		require.NoError(t, PrintJourneyOrders(layout, newTestConfig(schema.CSVOut, path)))
		records, err := csv.NewReader(strings.NewReader(readOutput(t, path))).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 4)
		assert.Equal(t, []string{"Lending", "0", "Origination", "natural"}, records[3])
	})

	t.Run("empty layout", func(t *testing.T) {
		assert.Empty(t, buildJourneyOrderViews(&schema.Layout{}))
	})
}
