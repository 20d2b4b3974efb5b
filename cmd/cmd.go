// Package cmd defines the command-line interface for roadmap.
package cmd

import (
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(headerCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the order subcommands to the parent order command
	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderMoveCmd)
	orderCmd.AddCommand(orderSetCmd)
	orderCmd.AddCommand(orderClearCmd)
	orderCmd.AddCommand(orderStatusCmd)
	orderCmd.AddCommand(orderMigrateCmd)
	orderCmd.AddCommand(orderExportCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or timeline or json or csv or parquet or svg")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for axis positions")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().StringP("program", "p", "", "Only render this program (the timeline window stays global)")
	rootCmd.PersistentFlags().String("sheet", "", "XLSX sheet name (defaults to the first sheet)")
	rootCmd.PersistentFlags().String("order-backend", string(schema.SQLiteBackend), "Journey-order backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("order-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("title", contract.DefaultTitle, "Title of the deck")
	exportCmd.Flags().Int("slide-width", contract.DefaultSlideWidth, "Slide width in pixels")
	exportCmd.Flags().Int("slide-height", contract.DefaultSlideHeight, "Minimum slide height in pixels")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}

	// Bind all flags of headerCmd to Viper
	headerCmd.Flags().String("start", "", "Window start as MM/DD/YYYY")
	headerCmd.Flags().String("end", "", "Window end as MM/DD/YYYY")
	if err := viper.BindPFlags(headerCmd.Flags()); err != nil {
		contract.LogFatal("Error binding header flags", err)
	}

	// Bind all flags of sizeCmd to Viper
	sizeCmd.Flags().String("format", string(schema.RangeFormat), "Answer format: range or minmax or average or max or raw")
	if err := viper.BindPFlags(sizeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding size flags", err)
	}

	// Order edit flags are read directly from the command, not from Viper
	orderMoveCmd.Flags().String("journey", "", "Journey to move")
	orderMoveCmd.Flags().Int("to", 0, "Zero-based target index")
	_ = orderMoveCmd.MarkFlagRequired("journey")
	orderSetCmd.Flags().String("journeys", "", "Comma-separated journey order")
	_ = orderSetCmd.MarkFlagRequired("journeys")

	// Bind all flags of orderMigrateCmd to Viper
	orderMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(orderMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding order migrate flags", err)
	}
}
