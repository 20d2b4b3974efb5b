package algo

import (
	"fmt"
	"math"
	"strings"

	"github.com/huangsam/roadmap/schema"
)

// sizeTable holds the effort estimate of every canonical size category.
var sizeTable = map[schema.SizeCategory]schema.SprintEstimate{
	schema.SizeXS: {
		Size:         schema.SizeXS,
		Label:        "Extra Small",
		ExampleTasks: []string{"Config change", "Copy update", "Feature flag toggle"},
		Min:          1,
		Max:          2,
	},
	schema.SizeS: {
		Size:         schema.SizeS,
		Label:        "Small",
		ExampleTasks: []string{"Single API endpoint", "Minor UI component", "Simple integration"},
		Min:          2,
		Max:          3,
	},
	schema.SizeM: {
		Size:         schema.SizeM,
		Label:        "Medium",
		ExampleTasks: []string{"New screen with backend", "Third-party integration", "Reporting feature"},
		Min:          3,
		Max:          4,
	},
	schema.SizeL: {
		Size:         schema.SizeL,
		Label:        "Large",
		ExampleTasks: []string{"New customer journey", "Multi-service change", "Data migration"},
		Min:          4,
		Max:          6,
	},
	schema.SizeXL: {
		Size:         schema.SizeXL,
		Label:        "Extra Large",
		ExampleTasks: []string{"New product capability", "Platform re-architecture", "Cross-team program"},
		Min:          6,
		Max:          8,
	},
	schema.SizeXXL: {
		Size:         schema.SizeXXL,
		Label:        "XXL",
		ExampleTasks: []string{"Greenfield platform", "Core system replacement"},
		Min:          8,
		Max:          schema.Unbounded,
		Notes:        "This size likely needs to be broken down into smaller epics/stories before estimation.",
	},
}

// NormalizeSize maps a case-insensitive size token to its canonical category.
func NormalizeSize(token string) (schema.SizeCategory, error) {
	size := schema.SizeCategory(strings.ToUpper(strings.TrimSpace(token)))
	if _, ok := sizeTable[size]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidSize, token)
	}
	return size, nil
}

// LookupSize returns the estimate record for a size token.
func LookupSize(token string) (schema.SprintEstimate, error) {
	size, err := NormalizeSize(token)
	if err != nil {
		return schema.SprintEstimate{}, err
	}
	est := sizeTable[size]
	est.ExampleTasks = append([]string(nil), est.ExampleTasks...)
	return est, nil
}

// SprintsRequired answers a size token in the requested format:
//   - range:   string such as "3–4 sprints" or "8+ sprints"
//   - minmax:  schema.SprintMinMax, Max is schema.Unbounded when infinite
//   - average: schema.SprintCount rounded to one decimal, NaN when unbounded
//   - max:     schema.SprintCount upper bound
//   - raw:     schema.SprintEstimate
func SprintsRequired(token string, format schema.SizeFormat) (any, error) {
	est, err := LookupSize(token)
	if err != nil {
		return nil, err
	}
	switch format {
	case schema.RangeFormat:
		return FormatRange(est), nil
	case schema.MinMaxFormat:
		return schema.SprintMinMax{Min: est.Min, Max: est.Max}, nil
	case schema.AverageFormat:
		return AverageSprints(est), nil
	case schema.MaxFormat:
		return est.Max, nil
	case schema.RawFormat:
		return est, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FormatRange renders the human range string of an estimate.
func FormatRange(est schema.SprintEstimate) string {
	if !est.Max.IsFinite() {
		return fmt.Sprintf("%s+ sprints", est.Min)
	}
	return fmt.Sprintf("%s–%s sprints", est.Min, est.Max)
}

// AverageSprints is the midpoint of the estimate rounded to one decimal.
func AverageSprints(est schema.SprintEstimate) schema.SprintCount {
	if !est.Max.IsFinite() {
		return schema.SprintCount(math.NaN())
	}
	mid := (float64(est.Min) + float64(est.Max)) / 2
	return schema.SprintCount(math.Round(mid*10) / 10)
}

// LeadSprints is the sprint count used for lead-time calculation.
// Unbounded categories fall back to their minimum.
func LeadSprints(token string) (float64, error) {
	est, err := LookupSize(token)
	if err != nil {
		return 0, err
	}
	if !est.Max.IsFinite() {
		return float64(est.Min), nil
	}
	return float64(est.Max), nil
}
