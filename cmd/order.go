package cmd

import (
	"fmt"

	"github.com/huangsam/roadmap/core"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/internal/iocache"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// orderConfig loads the store-related config values without a sheet.
func orderConfig() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	if err := contract.RevalidateBackend(cfg, viper.GetString("order-backend"), viper.GetString("order-db-connect")); err != nil {
		return err
	}
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// orderSetup loads minimal configuration needed for store operations.
// This is used by commands that need the store without a milestone sheet.
func orderSetup(_ *cobra.Command, _ []string) error {
	if err := orderConfig(); err != nil {
		return err
	}
	if err := iocache.InitStores(cfg.OrderBackend, cfg.OrderDBConnect); err != nil {
		return fmt.Errorf("failed to initialize journey-order store: %w", err)
	}
	return nil
}

// orderCmd focused on journey-order management.
//
// Note: status, migrate and export use minimal initialization (orderSetup)
// instead of the full sharedSetup. They do not need a milestone sheet.
var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage the stored journey order of each program",
	Long: `Manage the display order of journey lanes.

Roadmap stores one journey order per program and sheet. The first layout of a
sheet seeds the store with the first-seen order. When the sheet content changes
the stored orders of that sheet are reset.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (keeps
nothing; move and set are rejected)

Subcommands:
  show    - Print the journey order of every program
  move    - Move one journey to a new index
  set     - Store an explicit journey order
  clear   - Forget the stored orders of a sheet
  status  - Show store statistics and connection info
  migrate - Run schema migrations
  export  - Write every stored order to Parquet`,
}

// orderShowCmd prints the journey orders in effect.
var orderShowCmd = &cobra.Command{
	Use:   "show <sheet>",
	Short: "Print the journey order of every program",
	Long: `Print the journey order in effect for each program of a sheet, together
with where it came from (natural, override, partial, rejected).

Examples:
  roadmap order show milestones.xlsx
  roadmap order show milestones.xlsx --program Payments --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run:     layoutRun(core.ExecuteOrderShow, "Cannot show journey orders"),
}

// orderMoveCmd moves one journey within its program.
var orderMoveCmd = &cobra.Command{
	Use:   "move <sheet>",
	Short: "Move a journey to a new position",
	Long: `Move one journey lane to a zero-based index within its program. The
other journeys keep their relative order.

Examples:
  # Put Refunds first
  roadmap order move milestones.xlsx --program Payments --journey Refunds --to 0`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		journey, _ := cmd.Flags().GetString("journey")
		to, _ := cmd.Flags().GetInt("to")
		if err := core.ExecuteOrderMove(rootCtx, cfg, orderManager, journey, to); err != nil {
			contract.LogFatal("Cannot move journey", err)
		}
	},
}

// orderSetCmd stores an explicit journey order.
var orderSetCmd = &cobra.Command{
	Use:   "set <sheet>",
	Short: "Store an explicit journey order",
	Long: `Store an explicit journey order for a program. Unknown or duplicate
journeys are rejected. Journeys left out are appended in first-seen order.

Examples:
  roadmap order set milestones.xlsx --program Payments --journeys "Refunds,Checkout"`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(cmd *cobra.Command, _ []string) {
		journeys, _ := cmd.Flags().GetString("journeys")
		if err := core.ExecuteOrderSet(rootCtx, cfg, orderManager, contract.ParseList(journeys)); err != nil {
			contract.LogFatal("Cannot set journey order", err)
		}
	},
}

// orderClearCmd removes the stored orders of a sheet.
var orderClearCmd = &cobra.Command{
	Use:   "clear <sheet>",
	Short: "Forget the stored journey orders of a sheet",
	Long: `Remove every stored journey order of a sheet. The next layout falls
back to the first-seen order and seeds the store again.

Examples:
  roadmap order clear milestones.xlsx`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteOrderClear(rootCtx, cfg, orderManager); err != nil {
			contract.LogFatal("Cannot clear journey orders", err)
		}
	},
}

// orderStatusCmd shows store status.
var orderStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display journey-order store statistics and connection details",
	Long: `Show the backend, connection state, schema version, number of stored
sheets and entries, and the newest and oldest update.

Examples:
  roadmap order status
  ROADMAP_ORDER_BACKEND=postgresql ROADMAP_ORDER_DB_CONNECT="host=... dbname=..." roadmap order status`,
	Args:    cobra.NoArgs,
	PreRunE: orderSetup,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetOrderStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get order status", err)
		}
		iocache.PrintOrderStatus(status)
	},
}

// orderMigrateCmd runs database migrations for the order store.
var orderMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the journey-order store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  roadmap order migrate

  # Rollback to initial state
  roadmap order migrate --target-version 0`,
	Args:    cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error { return orderConfig() },
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		result, err := iocache.MigrateOrders(cfg.OrderBackend, cfg.OrderDBConnect, targetVersion)
		if err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
		iocache.PrintMigrationResult(result)
	},
}

// orderExportCmd exports stored orders to Parquet.
var orderExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored journey orders to Parquet",
	Long: `Write every stored journey order to a Parquet file, one row per journey.

Requires: --output-file parameter

Examples:
  roadmap order export --output-file orders.parquet
  duckdb -c "SELECT program, journey FROM read_parquet('orders.parquet') ORDER BY program, rank"`,
	Args:    cobra.NoArgs,
	PreRunE: orderSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteOrderExport(iocache.Manager.GetOrderStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export journey orders", err)
		}
	},
}
