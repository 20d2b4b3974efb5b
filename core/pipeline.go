package core

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/roadmap/core/agg"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/internal/ingest"
	"github.com/huangsam/roadmap/schema"
)

// GetRoadmapLayout ingests the configured sheet and builds its layout using
// the stored journey orders. Unless the context is read-only, the store is
// brought in sync: stale orders are cleared and every rendered program order
// that differs from the stored one is saved. The program filter is applied
// last so the window stays global.
func GetRoadmapLayout(ctx context.Context, cfg *contract.Config, mgr contract.OrderManager) (*schema.Layout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("an input sheet is required")
	}

	result, err := ingest.ReadRecords(cfg.InputPath, cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", cfg.InputPath, err)
	}
	if cfg.Program != "" {
		if names := agg.ProgramNames(result.Records); !slices.Contains(names, cfg.Program) {
			return nil, fmt.Errorf("program %q not found, available: %s", cfg.Program, strings.Join(names, ", "))
		}
	}
	fingerprint := Fingerprint(result.Records)

	var store contract.OrderStore
	if mgr != nil {
		store = mgr.GetOrderStore()
	}
	overrides, warnings := loadOverrides(ctx, store, cfg.Dataset(), fingerprint)

	layout := BuildLayout(result.Records, overrides)
	layout.Warnings = slices.Concat(result.Warnings, warnings, layout.Warnings)

	if store != nil && !isReadOnlyOrders(ctx) {
		layout.Warnings = append(layout.Warnings, syncOrders(store, cfg.Dataset(), fingerprint, layout, overrides)...)
	}
	if !shouldSuppressWarnings(ctx) {
		contract.LogWarnings(layout.Warnings)
	}

	if cfg.Program == "" {
		return layout, nil
	}
	return FilterProgram(layout, cfg.Program)
}

// loadOverrides returns the stored orders that are still valid for the record set.
// A fingerprint mismatch means the data was replaced; the orders are then
// cleared (unless read-only) and none are applied.
func loadOverrides(ctx context.Context, store contract.OrderStore, dataset, fingerprint string) (schema.JourneyOrder, []string) {
	if store == nil {
		return nil, nil
	}
	overrides, stored, err := store.Load(dataset)
	if err != nil {
		return nil, []string{fmt.Sprintf("journey orders unavailable: %v", err)}
	}
	if len(overrides) == 0 || stored == fingerprint {
		return overrides, nil
	}
	if isReadOnlyOrders(ctx) {
		return nil, nil
	}
	if err := store.Clear(dataset); err != nil {
		return nil, []string{fmt.Sprintf("failed to clear stale journey orders: %v", err)}
	}
	return nil, nil
}

// syncOrders saves every program whose rendered order differs from its stored one.
func syncOrders(store contract.OrderStore, dataset, fingerprint string, layout *schema.Layout, overrides schema.JourneyOrder) []string {
	var warnings []string
	for _, program := range layout.Programs {
		order := JourneyNames(program)
		if stored, ok := overrides[program.Name]; ok && slices.Equal(stored, order) {
			continue
		}
		if err := store.Save(dataset, program.Name, order, fingerprint); err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to store journey order of %q: %v", program.Name, err))
		}
	}
	return warnings
}
