package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintHeader writes the quarter header of a window.
func PrintHeader(window schema.TimelineWindow, cells []schema.QuarterHeaderCell, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Window   schema.TimelineWindow      `json:"window"`
				Quarters []schema.QuarterHeaderCell `json:"quarters"`
				Months   []string                   `json:"months"`
			}{window, cells, algo.HeaderMonths(cells)})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeaderCSV(w, cells)
		}, "Wrote CSV")
	case schema.TextOut, schema.TimelineOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeaderTable(w, window, cells)
		}, "Wrote table")
	default:
		return fmt.Errorf("output %q is not supported for the timeline header", cfg.Output)
	}
}

// writeHeaderTable writes one column per quarter with its months below.
func writeHeaderTable(w io.Writer, window schema.TimelineWindow, cells []schema.QuarterHeaderCell) error {
	if _, err := fmt.Fprintf(w, "🗓️  Window: %s\n", describeWindow(window, false)); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	headers := make([]string, 0, len(cells))
	row := make([]string, 0, len(cells))
	for _, cell := range cells {
		headers = append(headers, algo.QuarterLabel(cell))
		row = append(row, strings.Join(cell.Months, " "))
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Formatting.AutoFormat = tw.Off
	})
	if err := table.Append(row); err != nil {
		return err
	}
	return table.Render()
}

// writeHeaderCSV writes one row per header month.
func writeHeaderCSV(w io.Writer, cells []schema.QuarterHeaderCell) error {
	return writeCSVWithHeader(w, []string{"year", "quarter", "month"}, func(csvWriter *csv.Writer) error {
		for _, cell := range cells {
			for _, month := range cell.Months {
				if err := csvWriter.Write([]string{cell.Year, cell.Quarter, month}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
