// Package schema has configs, models and global variables for all parts of roadmap.
package schema

import "time"

// MilestoneRecord is one ingested spreadsheet row. It is never mutated once produced.
type MilestoneRecord struct {
	Program             string  `json:"program"`
	Journey             string  `json:"journey"`
	MilestoneType       string  `json:"milestone_type"`
	DeliveryMilestone   string  `json:"delivery_milestone"`
	PlannedDeliveryDate string  `json:"planned_delivery_date"` // en-US MM/DD/YYYY after ingestion
	SprintRequired      float64 `json:"sprint_required"`       // >= 0
	ImpactOn            string  `json:"impact_on,omitempty"`
}

// TimelineWindow is the [Start, End] date range the horizontal axis represents.
type TimelineWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// PositionedMilestone is a record placed on the axis of one layout.
type PositionedMilestone struct {
	Program        string        `json:"program"`
	Journey        string        `json:"journey"`
	Label          string        `json:"label"`
	MilestoneType  string        `json:"milestone_type"`
	Kind           MilestoneKind `json:"kind"`
	Index          int           `json:"index"` // position in the ingested record list
	Date           time.Time     `json:"date"`  // zero when the record date is malformed
	DateValid      bool          `json:"date_valid"`
	SprintRequired float64       `json:"sprint_required"`
	ImpactOn       string        `json:"impact_on,omitempty"`
	Position       float64       `json:"position"`        // [3, 97] under the milestone policy
	VerticalOffset int           `json:"vertical_offset"` // stacking level, 0 = baseline row
}

// BuildPhase is the lead-time interval that ends at one milestone.
// StartPosition <= EndPosition is not guaranteed.
type BuildPhase struct {
	Label          string        `json:"label"`
	Kind           MilestoneKind `json:"kind"`
	MilestoneIndex int           `json:"milestone_index"`
	StartPosition  float64       `json:"start_position"`
	EndPosition    float64       `json:"end_position"`
	VerticalOffset int           `json:"vertical_offset"`
}

// QuarterHeaderCell is one calendar quarter of the timeline header.
type QuarterHeaderCell struct {
	Year    string   `json:"year"`
	Quarter string   `json:"quarter"` // Q1..Q4
	Months  []string `json:"months"`  // JAN..DEC, clipped to the window
}

// JourneyLayout is one workstream lane.
type JourneyLayout struct {
	Name        string                `json:"name"`
	Milestones  []PositionedMilestone `json:"milestones"` // ascending position
	BuildPhases []BuildPhase          `json:"build_phases"`
	MaxOffset   int                   `json:"max_offset"`
	RowHeight   int                   `json:"row_height"`
}

// ProgramLayout is one program and its lanes in display order.
type ProgramLayout struct {
	Name        string          `json:"name"`
	OrderSource OrderSource     `json:"order_source"`
	Journeys    []JourneyLayout `json:"journeys"`
}

// Layout is the complete render input shared by every renderer.
type Layout struct {
	Window          TimelineWindow      `json:"window"`
	FallbackWindow  bool                `json:"fallback_window"`
	Header          []QuarterHeaderCell `json:"header"`
	Programs        []ProgramLayout     `json:"programs"`
	TotalMilestones int                 `json:"total_milestones"`
	Warnings        []string            `json:"warnings,omitempty"`
}

// JourneyOrder maps a program name to its user-chosen journey order.
type JourneyOrder map[string][]string

// Clone returns a deep copy of the order map.
func (o JourneyOrder) Clone() JourneyOrder {
	if o == nil {
		return nil
	}
	clone := make(JourneyOrder, len(o))
	for program, journeys := range o {
		clone[program] = append([]string(nil), journeys...)
	}
	return clone
}

// ProgramSummary counts one program's content.
type ProgramSummary struct {
	Name       string `json:"name"`
	Journeys   int    `json:"journeys"`
	Milestones int    `json:"milestones"`
}

// LayoutSummary counts the content of a layout.
type LayoutSummary struct {
	Programs   int                   `json:"programs"`
	Journeys   int                   `json:"journeys"`
	Milestones int                   `json:"milestones"`
	Undated    int                   `json:"undated"`
	ByKind     map[MilestoneKind]int `json:"by_kind"`
	PerProgram []ProgramSummary      `json:"per_program"`
}
