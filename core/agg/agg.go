// Package agg has grouping and summary logic for milestone records.
package agg

import (
	"slices"

	"github.com/huangsam/roadmap/schema"
)

// IndexedRecord keeps a record together with its position in the ingested list.
type IndexedRecord struct {
	Index  int
	Record schema.MilestoneRecord
}

// JourneyGroup is the records of one journey in ingestion order.
type JourneyGroup struct {
	Name    string
	Records []IndexedRecord
}

// ProgramGroup is one program with its journeys in first-seen order.
type ProgramGroup struct {
	Name     string
	Journeys []JourneyGroup
}

// JourneyNames returns the natural journey order of a program.
func (g ProgramGroup) JourneyNames() []string {
	names := make([]string, 0, len(g.Journeys))
	for _, j := range g.Journeys {
		names = append(names, j.Name)
	}
	return names
}

// Journey looks up a journey group by name.
func (g ProgramGroup) Journey(name string) (JourneyGroup, bool) {
	for _, j := range g.Journeys {
		if j.Name == name {
			return j, true
		}
	}
	return JourneyGroup{}, false
}

// GroupRecords partitions records by program then journey, preserving
// first-seen order at both levels.
func GroupRecords(records []schema.MilestoneRecord) []ProgramGroup {
	var programs []ProgramGroup
	programIdx := make(map[string]int)
	journeyIdx := make(map[string]map[string]int)

	for i, rec := range records {
		p, ok := programIdx[rec.Program]
		if !ok {
			p = len(programs)
			programIdx[rec.Program] = p
			journeyIdx[rec.Program] = make(map[string]int)
			programs = append(programs, ProgramGroup{Name: rec.Program})
		}

		j, ok := journeyIdx[rec.Program][rec.Journey]
		if !ok {
			j = len(programs[p].Journeys)
			journeyIdx[rec.Program][rec.Journey] = j
			programs[p].Journeys = append(programs[p].Journeys, JourneyGroup{Name: rec.Journey})
		}

		programs[p].Journeys[j].Records = append(programs[p].Journeys[j].Records, IndexedRecord{Index: i, Record: rec})
	}
	return programs
}

// ProgramNames lists distinct programs in first-seen order.
func ProgramNames(records []schema.MilestoneRecord) []string {
	var names []string
	for _, rec := range records {
		if !slices.Contains(names, rec.Program) {
			names = append(names, rec.Program)
		}
	}
	return names
}

// Summarize counts the milestones of a layout per program and per kind.
func Summarize(layout *schema.Layout) schema.LayoutSummary {
	summary := schema.LayoutSummary{
		Programs: len(layout.Programs),
		ByKind:   make(map[schema.MilestoneKind]int, len(schema.AllMilestoneKinds)),
	}
	for _, kind := range schema.AllMilestoneKinds {
		summary.ByKind[kind] = 0
	}
	for _, program := range layout.Programs {
		ps := schema.ProgramSummary{Name: program.Name, Journeys: len(program.Journeys)}
		for _, journey := range program.Journeys {
			for _, m := range journey.Milestones {
				ps.Milestones++
				summary.ByKind[m.Kind]++
				if !m.DateValid {
					summary.Undated++
				}
			}
		}
		summary.Journeys += ps.Journeys
		summary.Milestones += ps.Milestones
		summary.PerProgram = append(summary.PerProgram, ps)
	}
	return summary
}
