package schema

import (
	"encoding/json"
	"math"
	"strconv"
)

// SprintCount is a sprint figure that may be unbounded (+Inf) or undefined (NaN).
type SprintCount float64

// Unbounded is the marker for a size with no finite upper bound.
var Unbounded = SprintCount(math.Inf(1))

// IsFinite reports whether the count is an ordinary number.
func (c SprintCount) IsFinite() bool {
	f := float64(c)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// IsUnbounded reports whether the count has no upper bound.
func (c SprintCount) IsUnbounded() bool {
	return math.IsInf(float64(c), 1)
}

// IsUndefined reports whether the count is not meaningful (NaN).
func (c SprintCount) IsUndefined() bool {
	return math.IsNaN(float64(c))
}

// String renders "Infinity" and "undefined" for the non-finite markers.
func (c SprintCount) String() string {
	switch {
	case c.IsUnbounded():
		return "Infinity"
	case c.IsUndefined():
		return "undefined"
	default:
		return strconv.FormatFloat(float64(c), 'f', -1, 64)
	}
}

// MarshalJSON keeps non-finite values encodable.
func (c SprintCount) MarshalJSON() ([]byte, error) {
	switch {
	case c.IsUnbounded():
		return []byte(`"Infinity"`), nil
	case c.IsUndefined():
		return []byte("null"), nil
	default:
		return json.Marshal(float64(c))
	}
}

// SprintMinMax is the minmax answer of the size estimator.
type SprintMinMax struct {
	Min SprintCount `json:"min"`
	Max SprintCount `json:"max"`
}

// SprintEstimate is the full estimate record for one size category.
type SprintEstimate struct {
	Size         SizeCategory `json:"size"`
	Label        string       `json:"label"`
	ExampleTasks []string     `json:"example_tasks"`
	Min          SprintCount  `json:"min"`
	Max          SprintCount  `json:"max"`
	Notes        string       `json:"notes,omitempty"`
}
