// Package outwriter renders a roadmap layout in every supported output format.
// Renderers only read the layout; none of them re-derives positions from dates.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/internal/parquet"
	"github.com/huangsam/roadmap/schema"
	"golang.org/x/term"
)

// defaultTermWidth is used when the terminal size cannot be detected.
const defaultTermWidth = 100

// PrintLayout writes the layout in the configured output format.
func PrintLayout(layout *schema.Layout, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLayoutJSON(w, layout)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLayoutCSV(w, layout, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteMilestones(w, parquet.ConvertLayout(layout))
		}, "Wrote Parquet")
	case schema.SVGOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDeck(w, layout, cfg)
		}, "Wrote SVG deck")
	case schema.TimelineOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTimeline(w, layout, cfg)
		}, "Wrote timeline")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLayoutTable(w, layout, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// GetTerminalWidth returns the width override, else the detected terminal
// width, else a conservative default.
func GetTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detected, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detected <= 0 {
		return defaultTermWidth
	}
	return detected
}

// getMaxTableLabelWidth sizes the milestone label column of the text table.
func getMaxTableLabelWidth(cfg *contract.Config) int {
	// Journey + Kind + Date + Sprints + Pos + Stack + Phase columns with borders
	const fixedWidth = 95
	available := GetTerminalWidth(cfg) - fixedWidth
	return max(12, min(available, 48))
}

// describeWindow renders a window as "Jul 1 2025 to Jun 30 2026".
func describeWindow(window schema.TimelineWindow, fallback bool) string {
	text := fmt.Sprintf("%s to %s", window.Start.Format("Jan 2 2006"), window.End.Format("Jan 2 2006"))
	if fallback {
		text += " (fallback, no valid dates)"
	}
	return text
}
