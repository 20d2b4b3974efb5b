package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
)

// journeyOrderView is the rendered journey order of one program.
type journeyOrderView struct {
	Program  string             `json:"program"`
	Source   schema.OrderSource `json:"source"`
	Journeys []string           `json:"journeys"`
}

// buildJourneyOrderViews extracts the journey order of every program.
func buildJourneyOrderViews(layout *schema.Layout) []journeyOrderView {
	views := make([]journeyOrderView, 0, len(layout.Programs))
	for _, program := range layout.Programs {
		view := journeyOrderView{Program: program.Name, Source: program.OrderSource, Journeys: []string{}}
		for _, j := range program.Journeys {
			view.Journeys = append(view.Journeys, j.Name)
		}
		views = append(views, view)
	}
	return views
}

// PrintJourneyOrders writes the journey order of every program in the layout.
func PrintJourneyOrders(layout *schema.Layout, cfg *contract.Config) error {
	views := buildJourneyOrderViews(layout)
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, views)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"program", "rank", "journey", "source"}, func(csvWriter *csv.Writer) error {
				for _, v := range views {
					for rank, journey := range v.Journeys {
						if err := csvWriter.Write([]string{v.Program, strconv.Itoa(rank), journey, string(v.Source)}); err != nil {
							return err
						}
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJourneyOrderText(w, views)
		}, "Wrote text")
	}
}

// writeJourneyOrderText writes a numbered list per program.
func writeJourneyOrderText(w io.Writer, views []journeyOrderView) error {
	for _, v := range views {
		if _, err := fmt.Fprintf(w, "📌 %s (%s)\n", v.Program, v.Source); err != nil {
			return err
		}
		for rank, journey := range v.Journeys {
			if _, err := fmt.Fprintf(w, "  %d. %s\n", rank, journey); err != nil {
				return err
			}
		}
	}
	return nil
}
