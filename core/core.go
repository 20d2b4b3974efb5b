// Package core has the layout orchestration and the pipelines behind every command.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/internal/ingest"
	"github.com/huangsam/roadmap/internal/outwriter"
	"github.com/huangsam/roadmap/schema"
)

// DefaultDeckFile is where the slide deck goes when no output file is given.
const DefaultDeckFile = "roadmap.svg"

// ErrOrdersNotPersisted is returned when an order change targets the none backend.
var ErrOrdersNotPersisted = errors.New("the none order backend keeps no journey orders; use sqlite, mysql or postgresql")

// ExecutorFunc defines the function signature for the layout-driven commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.OrderManager) error

// ExecuteLayout builds the layout and prints it in the configured output format.
func ExecuteLayout(ctx context.Context, cfg *contract.Config, mgr contract.OrderManager) error {
	start := time.Now()
	layout, err := GetRoadmapLayout(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintLayout(layout, cfg, time.Since(start))
}

// ExecuteView renders the layout as a terminal timeline.
func ExecuteView(ctx context.Context, cfg *contract.Config, mgr contract.OrderManager) error {
	viewCfg := cfg.Clone()
	viewCfg.Output = schema.TimelineOut
	return ExecuteLayout(ctx, viewCfg, mgr)
}

// ExecuteExport writes the static slide deck. It consumes the same layout
// as every other renderer.
func ExecuteExport(ctx context.Context, cfg *contract.Config, mgr contract.OrderManager) error {
	exportCfg := cfg.Clone()
	exportCfg.Output = schema.SVGOut
	if exportCfg.OutputFile == "" {
		exportCfg.OutputFile = DefaultDeckFile
	}
	return ExecuteLayout(ctx, exportCfg, mgr)
}

// ExecuteHeader prints the quarter header for the explicit window, else for
// the window of the input sheet, else for the fallback window.
func ExecuteHeader(_ context.Context, cfg *contract.Config) error {
	window := algo.DefaultWindow()
	switch {
	case cfg.HasHeaderWindow:
		window = cfg.HeaderWindow
	case cfg.InputPath != "":
		result, err := ingest.ReadRecords(cfg.InputPath, cfg.Sheet)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", cfg.InputPath, err)
		}
		window, _ = algo.ComputeWindow(result.Records)
	}
	return outwriter.PrintHeader(window, algo.QuarterHeader(window), cfg)
}

// ExecuteSize prints the sprint estimate of one size token.
func ExecuteSize(_ context.Context, cfg *contract.Config, token string) error {
	format := cfg.SizeFormat
	if format == "" {
		format = schema.RangeFormat
	}
	result, err := algo.SprintsRequired(token, format)
	if err != nil {
		return err
	}
	return outwriter.PrintSprintEstimate(token, format, result, cfg)
}

// ExecuteOrderShow prints the rendered journey order of every program.
func ExecuteOrderShow(ctx context.Context, cfg *contract.Config, mgr contract.OrderManager) error {
	layout, err := GetRoadmapLayout(WithSuppressWarnings(ctx), cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintJourneyOrders(layout, cfg)
}

// ExecuteOrderMove moves one journey of the selected program to a new index.
func ExecuteOrderMove(ctx context.Context, cfg *contract.Config, mgr contract.OrderManager, journey string, to int) error {
	program, store, err := orderTarget(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	current := JourneyNames(program)
	from := slices.Index(current, journey)
	if from < 0 {
		return fmt.Errorf("%w: journey %q not in program %q", algo.ErrOrderingMismatch, journey, program.Name)
	}
	moved, err := algo.MoveJourney(current, from, to)
	if err != nil {
		return err
	}
	return saveOrder(cfg, store, program.Name, moved)
}

// ExecuteOrderSet stores an explicit journey order for the selected program.
// Journeys left out are appended in their current order.
func ExecuteOrderSet(ctx context.Context, cfg *contract.Config, mgr contract.OrderManager, journeys []string) error {
	program, store, err := orderTarget(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	order, _, err := algo.ResolveJourneyOrder(JourneyNames(program), journeys)
	if err != nil {
		return err
	}
	return saveOrder(cfg, store, program.Name, order)
}

// ExecuteOrderClear removes every stored journey order of the input sheet.
func ExecuteOrderClear(_ context.Context, cfg *contract.Config, mgr contract.OrderManager) error {
	store, err := requireStore(mgr)
	if err != nil {
		return err
	}
	if err := store.Clear(cfg.Dataset()); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "🧹 Cleared journey orders for %s\n", cfg.Dataset())
	return nil
}

// orderTarget resolves the program an order command works on.
func orderTarget(ctx context.Context, cfg *contract.Config, mgr contract.OrderManager) (schema.ProgramLayout, contract.OrderStore, error) {
	if cfg.Program == "" {
		return schema.ProgramLayout{}, nil, errors.New("--program is required")
	}
	if cfg.OrderBackend == schema.NoneBackend {
		return schema.ProgramLayout{}, nil, ErrOrdersNotPersisted
	}
	store, err := requireStore(mgr)
	if err != nil {
		return schema.ProgramLayout{}, nil, err
	}
	layout, err := GetRoadmapLayout(WithSuppressWarnings(ctx), cfg, mgr)
	if err != nil {
		return schema.ProgramLayout{}, nil, err
	}
	return layout.Programs[0], store, nil
}

// saveOrder persists an order against the current record set and prints the result.
func saveOrder(cfg *contract.Config, store contract.OrderStore, program string, order []string) error {
	result, err := ingest.ReadRecords(cfg.InputPath, cfg.Sheet)
	if err != nil {
		return err
	}
	if err := store.Save(cfg.Dataset(), program, order, Fingerprint(result.Records)); err != nil {
		return err
	}
	layout := BuildLayout(result.Records, schema.JourneyOrder{program: order})
	filtered, err := FilterProgram(layout, program)
	if err != nil {
		return err
	}
	return outwriter.PrintJourneyOrders(filtered, cfg)
}

// requireStore returns the order store or an error when none is configured.
func requireStore(mgr contract.OrderManager) (contract.OrderStore, error) {
	if mgr == nil {
		return nil, errors.New("journey-order store is not initialized")
	}
	store := mgr.GetOrderStore()
	if store == nil {
		return nil, errors.New("journey-order store is not initialized")
	}
	return store, nil
}
