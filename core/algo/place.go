package algo

import "github.com/huangsam/roadmap/schema"

// PlaceMilestone positions one record on the axis under the milestone policy.
// A malformed date lands at 50 with DateValid unset.
func PlaceMilestone(rec schema.MilestoneRecord, index int, window schema.TimelineWindow) schema.PositionedMilestone {
	m := schema.PositionedMilestone{
		Program:        rec.Program,
		Journey:        rec.Journey,
		Label:          rec.DeliveryMilestone,
		MilestoneType:  rec.MilestoneType,
		Kind:           ClassifyMilestone(rec.MilestoneType),
		Index:          index,
		SprintRequired: rec.SprintRequired,
		ImpactOn:       rec.ImpactOn,
		Position:       DegeneratePos,
	}
	if date, err := ParseDate(rec.PlannedDeliveryDate); err == nil {
		m.Date = date
		m.DateValid = true
		m.Position = Position(date, window, schema.MilestonePolicy)
	}
	return m
}
