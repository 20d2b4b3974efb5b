package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the journey-order store.
	DatabaseBackend string

	// MilestoneKind is the layout classification of a free-form milestone type.
	MilestoneKind string

	// SizeCategory is a canonical effort size token.
	SizeCategory string

	// SizeFormat selects the shape of a sprint estimate answer.
	SizeFormat string

	// PositionPolicy selects how a raw axis position is clamped.
	PositionPolicy string

	// OrderSource records where a program's journey order came from.
	OrderSource string
)

// All output modes supported.
const (
	TextOut     OutputMode = "text" // default
	TimelineOut OutputMode = "timeline"
	JSONOut     OutputMode = "json"
	CSVOut      OutputMode = "csv"
	ParquetOut  OutputMode = "parquet"
	SVGOut      OutputMode = "svg"
)

// All order store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All milestone kinds.
const (
	KeyGoLiveKind          MilestoneKind = "key"
	TechDropKind           MilestoneKind = "tech_drop"
	CheckpointKind         MilestoneKind = "checkpoint"
	CriticalDependencyKind MilestoneKind = "critical_dependency"
)

// All size categories, smallest first.
const (
	SizeXS  SizeCategory = "XS"
	SizeS   SizeCategory = "S"
	SizeM   SizeCategory = "M"
	SizeL   SizeCategory = "L"
	SizeXL  SizeCategory = "XL"
	SizeXXL SizeCategory = "XXL"
)

// All size answer formats.
const (
	RangeFormat   SizeFormat = "range" // default
	MinMaxFormat  SizeFormat = "minmax"
	AverageFormat SizeFormat = "average"
	MaxFormat     SizeFormat = "max"
	RawFormat     SizeFormat = "raw"
)

// Clamping policies for axis positions.
const (
	MilestonePolicy  PositionPolicy = "milestone"   // [3, 97]
	BuildPhasePolicy PositionPolicy = "build_phase" // [0, 97]
)

// Journey order sources.
const (
	OrderNatural  OrderSource = "natural"  // first-seen order
	OrderOverride OrderSource = "override" // full override applied
	OrderPartial  OrderSource = "partial"  // override applied, missing journeys appended
	OrderRejected OrderSource = "rejected" // override rejected, first-seen order used
)

// AllSizeCategories lists the canonical sizes in ascending order.
var AllSizeCategories = []SizeCategory{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

// AllMilestoneKinds lists the kinds in legend order.
var AllMilestoneKinds = []MilestoneKind{KeyGoLiveKind, TechDropKind, CheckpointKind, CriticalDependencyKind}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:     {},
	TimelineOut: {},
	JSONOut:     {},
	CSVOut:      {},
	ParquetOut:  {},
	SVGOut:      {},
}

// ValidDatabaseBackends lists all valid order store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// ValidSizeFormats lists all valid sprint answer formats.
var ValidSizeFormats = map[SizeFormat]struct{}{
	RangeFormat:   {},
	MinMaxFormat:  {},
	AverageFormat: {},
	MaxFormat:     {},
	RawFormat:     {},
}
