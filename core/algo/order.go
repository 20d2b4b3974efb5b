package algo

import (
	"fmt"
	"slices"

	"github.com/huangsam/roadmap/schema"
)

// ResolveJourneyOrder applies an override to a program's first-seen journeys.
//
// An override naming an unknown journey or naming one twice is rejected as a
// whole: the natural order is returned with ErrOrderingMismatch. Journeys the
// override omits are appended in natural order.
func ResolveJourneyOrder(natural, override []string) ([]string, schema.OrderSource, error) {
	if len(override) == 0 {
		return slices.Clone(natural), schema.OrderNatural, nil
	}
	if err := ValidateJourneyOrder(natural, override); err != nil {
		return slices.Clone(natural), schema.OrderRejected, err
	}

	result := slices.Clone(override)
	source := schema.OrderOverride
	for _, journey := range natural {
		if !slices.Contains(override, journey) {
			result = append(result, journey)
			source = schema.OrderPartial
		}
	}
	return result, source, nil
}

// ValidateJourneyOrder checks that every override entry is a known, unique journey.
func ValidateJourneyOrder(natural, override []string) error {
	seen := make(map[string]struct{}, len(override))
	for _, journey := range override {
		if !slices.Contains(natural, journey) {
			return fmt.Errorf("%w: unknown journey %q", ErrOrderingMismatch, journey)
		}
		if _, ok := seen[journey]; ok {
			return fmt.Errorf("%w: duplicate journey %q", ErrOrderingMismatch, journey)
		}
		seen[journey] = struct{}{}
	}
	return nil
}

// MoveJourney moves the element at from to index to, shifting the others.
func MoveJourney(order []string, from, to int) ([]string, error) {
	if from < 0 || from >= len(order) || to < 0 || to >= len(order) {
		return nil, fmt.Errorf("%w: move %d -> %d out of range for %d journeys", ErrOrderingMismatch, from, to, len(order))
	}
	result := slices.Clone(order)
	item := result[from]
	result = slices.Delete(result, from, from+1)
	return slices.Insert(result, to, item), nil
}
