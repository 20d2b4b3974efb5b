package cmd

import (
	"github.com/huangsam/roadmap/core"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/spf13/cobra"
)

// layoutCmd lays out a milestone sheet in the chosen output format.
var layoutCmd = &cobra.Command{
	Use:   "layout <sheet>",
	Short: "Lay out a milestone sheet and print the positioned milestones.",
	Long: `Read a milestone sheet (.csv or .xlsx) and compute the complete roadmap layout.

The layout holds:
- The timeline window spanning every valid milestone date
- The year and quarter header of that window
- One lane per journey with stacked markers for nearby milestones
- The build phase that leads into each milestone

Journey lanes follow the stored journey order of each program, see 'roadmap order'.

Examples:
  # Print a table per program
  roadmap layout milestones.xlsx

  # Only one program, the window still covers every program
  roadmap layout milestones.csv --program Payments

  # Feed the layout to another tool
  roadmap layout milestones.csv --output json --output-file layout.json

  # Flat milestone rows for analytics
  roadmap layout milestones.csv --output parquet --output-file layout.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run:     layoutRun(core.ExecuteLayout, "Cannot lay out roadmap"),
}

// viewCmd draws the layout as a terminal timeline.
var viewCmd = &cobra.Command{
	Use:   "view <sheet>",
	Short: "Draw the roadmap as a timeline in the terminal.",
	Long: `Render the roadmap layout as a terminal timeline.

Each program gets the quarter header followed by one lane per journey.
Markers use the kind symbol and build phases are drawn as bars ending at their milestone.

Examples:
  # Draw every program
  roadmap view milestones.xlsx

  # Draw one program on a wide terminal
  roadmap view milestones.xlsx --program Lending --width 160`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run:     layoutRun(core.ExecuteView, "Cannot draw roadmap"),
}

// exportCmd writes the roadmap as an SVG slide deck.
var exportCmd = &cobra.Command{
	Use:   "export <sheet>",
	Short: "Export the roadmap as an SVG slide deck.",
	Long: `Export the roadmap as a single SVG document of stacked slides.

The deck has a title slide, one slide per program and a summary slide.
Slides grow taller when the journey lanes do not fit.

Examples:
  # Write roadmap.svg
  roadmap export milestones.xlsx

  # Custom title and a 4K canvas
  roadmap export milestones.xlsx --title "FY26 Plan" --slide-width 3840 --slide-height 2160 --output-file fy26.svg`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run:     layoutRun(core.ExecuteExport, "Cannot export roadmap"),
}

// layoutRun adapts a layout executor to a cobra Run function.
func layoutRun(execute core.ExecutorFunc, failure string) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, _ []string) {
		if err := execute(rootCtx, cfg, orderManager); err != nil {
			contract.LogFatal(failure, err)
		}
	}
}
