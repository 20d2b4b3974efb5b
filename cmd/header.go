package cmd

import (
	"github.com/huangsam/roadmap/core"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/spf13/cobra"
)

// headerCmd prints the quarter header of a window.
var headerCmd = &cobra.Command{
	Use:   "header [sheet]",
	Short: "Print the year, quarter and month header of a timeline window.",
	Long: `Print the timeline header for an explicit window, the window of a sheet,
or the fallback window when neither is given.

Edge quarters only list the months inside the window.

Examples:
  # Header of an explicit window
  roadmap header --start 08/15/2025 --end 03/31/2026

  # Header of the window a sheet would use
  roadmap header milestones.xlsx --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: configSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHeader(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot print header", err)
		}
	},
}
