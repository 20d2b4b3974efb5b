package algo

import "github.com/huangsam/roadmap/schema"

// MinPhaseWidth is the narrowest phase bar renderers draw.
const MinPhaseWidth = 0.5

// DeriveBuildPhases computes a lead-time phase for every milestone.
// Start may exceed end; renderers widen such bars through PhaseSpan.
func DeriveBuildPhases(milestones []schema.PositionedMilestone, window schema.TimelineWindow) []schema.BuildPhase {
	phases := make([]schema.BuildPhase, 0, len(milestones))
	for _, m := range milestones {
		start := DegeneratePos
		if m.DateValid {
			start = Position(LeadStartDate(m.Date, m.SprintRequired), window, schema.BuildPhasePolicy)
		}
		phases = append(phases, schema.BuildPhase{
			Label:          m.Label,
			Kind:           m.Kind,
			MilestoneIndex: m.Index,
			StartPosition:  start,
			EndPosition:    m.Position,
			VerticalOffset: m.VerticalOffset,
		})
	}
	return phases
}

// PhaseSpan returns the drawable [left, right] of a phase, at least
// MinPhaseWidth wide and always ending at the milestone.
func PhaseSpan(phase schema.BuildPhase) (float64, float64) {
	right := phase.EndPosition
	left := phase.StartPosition
	if right-left < MinPhaseWidth {
		left = right - MinPhaseWidth
	}
	return max(0, left), right
}
