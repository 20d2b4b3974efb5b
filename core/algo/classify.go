package algo

import (
	"strings"

	"github.com/huangsam/roadmap/schema"
)

// ClassifyMilestone maps a free-form milestone type to its layout kind.
// Unrecognized values are checkpoints.
func ClassifyMilestone(milestoneType string) schema.MilestoneKind {
	t := strings.ToLower(strings.TrimSpace(milestoneType))
	switch {
	case IsCriticalDependency(t):
		return schema.CriticalDependencyKind
	case strings.Contains(t, "customer") && strings.Contains(t, "go") && strings.Contains(t, "live"),
		t == "key", t == "star":
		return schema.KeyGoLiveKind
	case strings.Contains(t, "tech") && strings.Contains(t, "drop"),
		t == "milestone", t == "triangle", t == "techdrop":
		return schema.TechDropKind
	default:
		return schema.CheckpointKind
	}
}

// IsCriticalDependency reports whether a milestone type bypasses size lookup.
func IsCriticalDependency(milestoneType string) bool {
	t := strings.ToLower(milestoneType)
	return strings.Contains(t, "critical") && strings.Contains(t, "depend")
}
