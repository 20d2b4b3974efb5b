// Package ingest reads milestone sheets into normalized records.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/schema"
	"github.com/xuri/excelize/v2"
)

// DefaultJourney names the lane of rows without a journey value.
const DefaultJourney = "General"

// excelEpoch is day zero of spreadsheet serial dates.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ErrMissingColumn is returned when a required column is absent from the header row.
var ErrMissingColumn = errors.New("missing required column")

// ErrUnsupportedFile is returned for input files that are neither CSV nor XLSX.
var ErrUnsupportedFile = errors.New("unsupported input file")

// Result is the outcome of reading one sheet.
type Result struct {
	Records  []schema.MilestoneRecord
	Warnings []string
}

// ReadRecords reads a .csv or .xlsx file. Sheet selects the XLSX sheet and
// defaults to the first one.
func ReadRecords(path, sheet string) (*Result, error) {
	rows, err := readRows(path, sheet)
	if err != nil {
		return nil, err
	}
	return NormalizeRows(rows)
}

func readRows(path, sheet string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		return ReadCSV(f)
	case ".xlsx", ".xlsm":
		return readXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%w: %s (expected .csv or .xlsx)", ErrUnsupportedFile, filepath.Base(path))
	}
}

// ReadCSV returns every row of a CSV stream.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return rows, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", filepath.Base(path))
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// NormalizeRows maps a header row plus data rows onto milestone records.
func NormalizeRows(rows [][]string) (*Result, error) {
	result := &Result{}
	if len(rows) == 0 {
		return result, nil
	}

	cols := mapColumns(rows[0])
	for _, required := range []field{fieldProgram, fieldPlannedDate} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		line := i + 2
		get := func(f field) string {
			idx, ok := cols[f]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		rec := schema.MilestoneRecord{
			Program:           get(fieldProgram),
			Journey:           get(fieldJourney),
			MilestoneType:     get(fieldMilestoneType),
			DeliveryMilestone: get(fieldMilestone),
			ImpactOn:          get(fieldImpactOn),
		}
		if rec.Journey == "" {
			rec.Journey = DefaultJourney
		}

		date, ok := NormalizeDate(get(fieldPlannedDate))
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("row %d: unparseable planned delivery date %q", line, get(fieldPlannedDate)))
		}
		rec.PlannedDeliveryDate = date

		sprints, warn := resolveSprints(rec.MilestoneType, get(fieldSize), get(fieldSprints))
		if warn != "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d: %s", line, warn))
		}
		rec.SprintRequired = sprints

		result.Records = append(result.Records, rec)
	}
	return result, nil
}

// NormalizeDate converts a date cell to en-US MM/DD/YYYY. Numeric cells are
// read as spreadsheet serial dates.
func NormalizeDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if date, err := algo.ParseDate(value); err == nil {
		return date.Format(algo.DateLayout), true
	}
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial < 1 || serial > 2958465 {
		return "", false
	}
	return excelEpoch.AddDate(0, 0, int(math.Floor(serial))).Format(algo.DateLayout), true
}

// resolveSprints picks the lead-time sprint count of one row.
// Critical dependencies never carry lead time.
func resolveSprints(milestoneType, size, sprints string) (float64, string) {
	if algo.IsCriticalDependency(milestoneType) {
		return 0, ""
	}
	var warn string
	if size != "" {
		lead, err := algo.LeadSprints(size)
		if err == nil {
			return lead, ""
		}
		warn = err.Error()
	}
	if sprints != "" {
		n, err := strconv.ParseFloat(sprints, 64)
		if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, joinWarn(warn, fmt.Sprintf("invalid sprint count %q", sprints))
		}
		return n, warn
	}
	return 0, warn
}

func joinWarn(a, b string) string {
	if a == "" {
		return b
	}
	return a + "; " + b
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
