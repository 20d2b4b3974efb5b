package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/roadmap/schema"
)

// Milestone kind labels.
const (
	KeyGoLiveLabel          = "Key Go-Live"
	TechDropLabel           = "Tech Drop"
	CheckpointLabel         = "Checkpoint"
	CriticalDependencyLabel = "Critical Dependency"
	BuildPhaseLabel         = "Build Phase"
)

// Color variables for console output.
var (
	KeyGoLiveColor          = color.New(color.FgYellow, color.Bold) // gold star
	TechDropColor           = color.New(color.FgBlue, color.Bold)
	CheckpointColor         = color.New(color.FgGreen)
	CriticalDependencyColor = color.New(color.FgRed, color.Bold)
	BuildPhaseColor         = color.New(color.FgHiYellow)
	WarningColor            = color.New(color.FgMagenta)
)

// Hex colors for rendered documents.
const (
	KeyGoLiveHex          = "#FFD700"
	TechDropHex           = "#4169E1"
	CheckpointHex         = "#32CD32"
	CriticalDependencyHex = "#DC143C"
	BuildPhaseHex         = "#FFA500"
)

// GetPlainKindLabel returns the display name of a milestone kind.
func GetPlainKindLabel(kind schema.MilestoneKind) string {
	switch kind {
	case schema.KeyGoLiveKind:
		return KeyGoLiveLabel
	case schema.TechDropKind:
		return TechDropLabel
	case schema.CriticalDependencyKind:
		return CriticalDependencyLabel
	default:
		return CheckpointLabel
	}
}

// GetColorKindLabel returns a colored kind label for console output (table).
func GetColorKindLabel(kind schema.MilestoneKind) string {
	return GetKindColor(kind).Sprint(GetPlainKindLabel(kind))
}

// GetKindColor returns the console color of a milestone kind.
func GetKindColor(kind schema.MilestoneKind) *color.Color {
	switch kind {
	case schema.KeyGoLiveKind:
		return KeyGoLiveColor
	case schema.TechDropKind:
		return TechDropColor
	case schema.CriticalDependencyKind:
		return CriticalDependencyColor
	default:
		return CheckpointColor
	}
}

// GetKindHex returns the document color of a milestone kind.
func GetKindHex(kind schema.MilestoneKind) string {
	switch kind {
	case schema.KeyGoLiveKind:
		return KeyGoLiveHex
	case schema.TechDropKind:
		return TechDropHex
	case schema.CriticalDependencyKind:
		return CriticalDependencyHex
	default:
		return CheckpointHex
	}
}

// GetKindSymbol returns the marker glyph of a milestone kind.
func GetKindSymbol(kind schema.MilestoneKind) string {
	switch kind {
	case schema.KeyGoLiveKind:
		return "★"
	case schema.TechDropKind:
		return "▲"
	case schema.CriticalDependencyKind:
		return "◆"
	default:
		return "●"
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogWarnings prints data-quality warnings collected during a layout run.
func LogWarnings(warnings []string) {
	for _, w := range warnings {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", WarningColor.Sprint("Warn"), w)
	}
}

// GetDBFilePath returns the path to the SQLite DB file for journey-order storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".roadmap_order.db"
	}
	return filepath.Join(homeDir, ".roadmap_order.db")
}

// TruncateLabel truncates a label to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so at least one character of content survives.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ParseList splits a comma-separated flag value, dropping empty entries.
func ParseList(s string) []string {
	var items []string
	for part := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
