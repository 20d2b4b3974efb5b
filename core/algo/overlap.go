package algo

import (
	"math"
	"slices"

	"github.com/huangsam/roadmap/schema"
)

// Stacking constants.
const (
	OverlapThreshold = 6.0 // positions closer than this share a month
	MinRowHeight     = 100
	RowBaseHeight    = 60
	RowOffsetHeight  = 50
)

// ResolveOverlaps assigns vertical offsets to the milestones of one journey.
//
// Milestones are stable-sorted by position and placed greedily: each one is
// pushed above every earlier neighbor that is within OverlapThreshold or whose
// date falls inside its lead-time span. Offsets are never revisited, so the
// result depends on placement order and is not guaranteed to be minimal.
func ResolveOverlaps(milestones []schema.PositionedMilestone) []schema.PositionedMilestone {
	placed := slices.Clone(milestones)
	slices.SortStableFunc(placed, func(a, b schema.PositionedMilestone) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		default:
			return 0
		}
	})

	for i := range placed {
		offset := 0
		for j := range i {
			candidate := placed[j].VerticalOffset
			if collides(placed[i], placed[j]) {
				candidate++
			}
			offset = max(offset, candidate)
		}
		placed[i].VerticalOffset = offset
	}
	return placed
}

// collides reports whether cur must stack above the earlier prev.
func collides(cur, prev schema.PositionedMilestone) bool {
	if math.Abs(cur.Position-prev.Position) < OverlapThreshold {
		return true
	}
	if !cur.DateValid || !prev.DateValid {
		return false
	}
	return !LeadStartDate(cur.Date, cur.SprintRequired).After(prev.Date)
}

// MaxOffset is the largest vertical offset in a journey.
func MaxOffset(milestones []schema.PositionedMilestone) int {
	result := 0
	for _, m := range milestones {
		result = max(result, m.VerticalOffset)
	}
	return result
}

// RowHeight is the pixel height a journey row needs for maxOffset stacking levels.
func RowHeight(maxOffset int) int {
	return max(MinRowHeight, RowBaseHeight+maxOffset*RowOffsetHeight)
}
