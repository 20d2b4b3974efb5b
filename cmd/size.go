package cmd

import (
	"github.com/huangsam/roadmap/core"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/spf13/cobra"
)

// sizeCmd answers the sprint estimate of a t-shirt size.
var sizeCmd = &cobra.Command{
	Use:   "size <XS|S|M|L|XL|XXL>",
	Short: "Estimate the sprints required for a t-shirt size.",
	Long: `Look up the sprint estimate of a t-shirt size. Sizes are case-insensitive.

Formats:
  range   - "3–4 sprints", or "8+ sprints" when unbounded
  minmax  - lower and upper bound
  average - midpoint rounded to one decimal, undefined when unbounded
  max     - upper bound, Infinity when unbounded
  raw     - the full estimate with example tasks and notes

Examples:
  roadmap size m
  roadmap size XXL --format raw
  roadmap size l --format minmax --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error { return configSetup(cmd, nil) },
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteSize(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot estimate size", err)
		}
	},
}
