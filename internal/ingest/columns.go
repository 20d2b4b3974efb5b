package ingest

import "strings"

// field is a logical record column.
type field string

const (
	fieldProgram       field = "program"
	fieldJourney       field = "journey"
	fieldMilestoneType field = "milestone type"
	fieldMilestone     field = "delivery milestone"
	fieldPlannedDate   field = "planned delivery date"
	fieldSize          field = "size"
	fieldSprints       field = "sprint required"
	fieldImpactOn      field = "impact on"
)

// columnAliases maps normalized header names to record columns.
var columnAliases = map[string]field{
	"program":               fieldProgram,
	"feature":               fieldJourney,
	"journey":               fieldJourney,
	"workstream":            fieldJourney,
	"milestone type":        fieldMilestoneType,
	"milestonetype":         fieldMilestoneType,
	"type":                  fieldMilestoneType,
	"delivery milestone":    fieldMilestone,
	"deliverymilestone":     fieldMilestone,
	"milestone":             fieldMilestone,
	"planned delivery date": fieldPlannedDate,
	"planneddeliverydate":   fieldPlannedDate,
	"plannedenddate":        fieldPlannedDate,
	"planned end date":      fieldPlannedDate,
	"tshirt size":           fieldSize,
	"t-shirt size":          fieldSize,
	"tshirtsize":            fieldSize,
	"size":                  fieldSize,
	"sprint required":       fieldSprints,
	"sprintrequired":        fieldSprints,
	"sprints":               fieldSprints,
	"impact on":             fieldImpactOn,
	"impacton":              fieldImpactOn,
}

// NormalizeHeader trims, lower-cases and collapses inner whitespace.
func NormalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// mapColumns resolves header cells to column indexes. The first matching
// column wins when aliases repeat.
func mapColumns(header []string) map[field]int {
	cols := make(map[field]int)
	for i, name := range header {
		f, ok := columnAliases[NormalizeHeader(name)]
		if !ok {
			continue
		}
		if _, seen := cols[f]; !seen {
			cols[f] = i
		}
	}
	return cols
}
