package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
)

// PrintSprintEstimate writes the answer of the size estimator.
func PrintSprintEstimate(token string, format schema.SizeFormat, result any, cfg *contract.Config) error {
	size, err := algo.NormalizeSize(token)
	if err != nil {
		return err
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, struct {
				Size   schema.SizeCategory `json:"size"`
				Format schema.SizeFormat   `json:"format"`
				Result any                 `json:"result"`
			}{size, format, result})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"size", "format", "result"}, func(csvWriter *csv.Writer) error {
				return csvWriter.Write([]string{string(size), string(format), formatEstimate(result)})
			})
		}, "Wrote CSV")
	case schema.TextOut, schema.TimelineOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEstimateText(w, size, format, result)
		}, "Wrote text")
	default:
		return fmt.Errorf("output %q is not supported for sprint estimates", cfg.Output)
	}
}

// formatEstimate renders any estimator answer on one line.
func formatEstimate(result any) string {
	switch v := result.(type) {
	case string:
		return v
	case schema.SprintCount:
		return v.String()
	case schema.SprintMinMax:
		return fmt.Sprintf("min=%s max=%s", v.Min, v.Max)
	case schema.SprintEstimate:
		return fmt.Sprintf("%s (%s): %s", v.Size, v.Label, algo.FormatRange(v))
	default:
		return fmt.Sprint(v)
	}
}

// writeEstimateText writes the answer, expanding raw estimates.
func writeEstimateText(w io.Writer, size schema.SizeCategory, format schema.SizeFormat, result any) error {
	est, ok := result.(schema.SprintEstimate)
	if !ok {
		_, err := fmt.Fprintf(w, "📏 %s (%s): %s\n", size, format, formatEstimate(result))
		return err
	}
	if _, err := fmt.Fprintf(w, "📏 %s\n", formatEstimate(est)); err != nil {
		return err
	}
	if len(est.ExampleTasks) > 0 {
		if _, err := fmt.Fprintf(w, "   Examples: %s\n", strings.Join(est.ExampleTasks, ", ")); err != nil {
			return err
		}
	}
	if est.Notes != "" {
		if _, err := fmt.Fprintf(w, "   Notes: %s\n", est.Notes); err != nil {
			return err
		}
	}
	return nil
}
