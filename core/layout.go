package core

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/huangsam/roadmap/core/agg"
	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/schema"
)

// BuildLayout composes the engine over a record set. The window is computed
// once from every record before any per-journey work, so all programs share
// one coordinate system. The result is never mutated afterwards.
func BuildLayout(records []schema.MilestoneRecord, overrides schema.JourneyOrder) *schema.Layout {
	window, fallback := algo.ComputeWindow(records)
	layout := &schema.Layout{
		Window:          window,
		FallbackWindow:  fallback,
		Header:          algo.QuarterHeader(window),
		Programs:        make([]schema.ProgramLayout, 0),
		TotalMilestones: len(records),
	}

	for _, group := range agg.GroupRecords(records) {
		order, source, err := algo.ResolveJourneyOrder(group.JourneyNames(), overrides[group.Name])
		if err != nil {
			layout.Warnings = append(layout.Warnings,
				fmt.Sprintf("program %q: %v; using first-seen journey order", group.Name, err))
		}

		program := schema.ProgramLayout{Name: group.Name, OrderSource: source}
		for _, name := range order {
			journey, _ := group.Journey(name)
			jl, warnings := layoutJourney(journey, window)
			program.Journeys = append(program.Journeys, jl)
			layout.Warnings = append(layout.Warnings, warnings...)
		}
		layout.Programs = append(layout.Programs, program)
	}
	return layout
}

// layoutJourney positions, stacks and phases the milestones of one lane.
func layoutJourney(journey agg.JourneyGroup, window schema.TimelineWindow) (schema.JourneyLayout, []string) {
	var warnings []string
	placed := make([]schema.PositionedMilestone, 0, len(journey.Records))
	for _, ir := range journey.Records {
		m := algo.PlaceMilestone(ir.Record, ir.Index, window)
		// Empty dates were already reported during ingestion.
		if !m.DateValid && ir.Record.PlannedDeliveryDate != "" {
			warnings = append(warnings, fmt.Sprintf("%s / %s: %q has malformed date %q, placed at %g",
				ir.Record.Program, journey.Name, ir.Record.DeliveryMilestone, ir.Record.PlannedDeliveryDate, algo.DegeneratePos))
		}
		placed = append(placed, m)
	}

	resolved := algo.ResolveOverlaps(placed)
	maxOffset := algo.MaxOffset(resolved)
	return schema.JourneyLayout{
		Name:        journey.Name,
		Milestones:  resolved,
		BuildPhases: algo.DeriveBuildPhases(resolved, window),
		MaxOffset:   maxOffset,
		RowHeight:   algo.RowHeight(maxOffset),
	}, warnings
}

// Fingerprint identifies a record set; stored journey orders are only
// trusted while it stays the same.
func Fingerprint(records []schema.MilestoneRecord) string {
	data, err := json.Marshal(records)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// JourneyNames returns the rendered journey order of a program.
func JourneyNames(program schema.ProgramLayout) []string {
	names := make([]string, 0, len(program.Journeys))
	for _, j := range program.Journeys {
		names = append(names, j.Name)
	}
	return names
}

// FindProgram looks up one program of a layout by name.
func FindProgram(layout *schema.Layout, name string) (schema.ProgramLayout, bool) {
	for _, p := range layout.Programs {
		if p.Name == name {
			return p, true
		}
	}
	return schema.ProgramLayout{}, false
}

// FilterProgram narrows a layout to one program, keeping the global window.
func FilterProgram(layout *schema.Layout, name string) (*schema.Layout, error) {
	program, ok := FindProgram(layout, name)
	if !ok {
		return nil, fmt.Errorf("program %q not found in %d programs", name, len(layout.Programs))
	}
	filtered := *layout
	filtered.Programs = []schema.ProgramLayout{program}
	filtered.TotalMilestones = 0
	for _, j := range program.Journeys {
		filtered.TotalMilestones += len(j.Milestones)
	}
	return &filtered, nil
}
