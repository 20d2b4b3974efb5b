package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/roadmap/core/algo"
	"github.com/huangsam/roadmap/schema"
)

// Default values for configuration.
const (
	DefaultPrecision   = 1
	MaxPrecision       = 3
	DefaultSlideWidth  = 960
	DefaultSlideHeight = 540
	DefaultTitle       = "Delivery Roadmap"
)

// Slide size bounds in pixels.
const (
	minSlideWidth  = 320
	maxSlideWidth  = 3840
	minSlideHeight = 180
	maxSlideHeight = 2160
)

// Config holds the runtime configuration for layout and export.
// This struct is the "final, validated" config.
type Config struct {
	InputPath string // absolute path of the milestone sheet, empty when not needed
	Sheet     string // XLSX sheet name, empty for the first sheet
	Program   string // render filter, the timeline window stays global

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	Title       string
	SlideWidth  int
	SlideHeight int

	OrderBackend   schema.DatabaseBackend
	OrderDBConnect string // Please use env var as this is plaintext

	HeaderWindow    schema.TimelineWindow
	HasHeaderWindow bool

	SizeFormat schema.SizeFormat
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	Program        string `mapstructure:"program"`
	Sheet          string `mapstructure:"sheet"`
	OrderBackend   string `mapstructure:"order-backend"`
	OrderDBConnect string `mapstructure:"order-db-connect"`

	// --- Fields from exportCmd.Flags() ---
	Title       string `mapstructure:"title"`
	SlideWidth  int    `mapstructure:"slide-width"`
	SlideHeight int    `mapstructure:"slide-height"`

	// --- Fields from headerCmd.Flags() ---
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`

	// --- Fields from sizeCmd.Flags() ---
	Format string `mapstructure:"format"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// CloneWithProgram returns a copy of the Config filtered to one program.
func (c *Config) CloneWithProgram(program string) *Config {
	clone := c.Clone()
	clone.Program = program
	return clone
}

// Dataset is the key journey orders are stored under.
func (c *Config) Dataset() string {
	return c.InputPath
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	if err := processHeaderWindow(cfg, input); err != nil {
		return err
	}
	return resolveInputPath(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("order-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("order-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the journey-order store configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.OrderBackend = schema.DatabaseBackend(strings.ToLower(input.OrderBackend))
	if cfg.OrderBackend == "" {
		cfg.OrderBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.OrderBackend]; !ok {
		return fmt.Errorf("invalid order backend '%s'. must be sqlite, mysql, postgresql, none", input.OrderBackend)
	}
	cfg.OrderDBConnect = input.OrderDBConnect
	return ValidateDatabaseConnectionString(cfg.OrderBackend, cfg.OrderDBConnect)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Program = strings.TrimSpace(input.Program)
	cfg.Sheet = input.Sheet
	cfg.Title = strings.TrimSpace(input.Title)
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, timeline, json, csv, parquet, svg", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 2. Slide Geometry ---
	if input.SlideWidth < minSlideWidth || input.SlideWidth > maxSlideWidth {
		return fmt.Errorf("slide-width must be between %d and %d (received %d)", minSlideWidth, maxSlideWidth, input.SlideWidth)
	}
	if input.SlideHeight < minSlideHeight || input.SlideHeight > maxSlideHeight {
		return fmt.Errorf("slide-height must be between %d and %d (received %d)", minSlideHeight, maxSlideHeight, input.SlideHeight)
	}
	cfg.SlideWidth = input.SlideWidth
	cfg.SlideHeight = input.SlideHeight

	// --- 3. Size Format ---
	cfg.SizeFormat = schema.SizeFormat(strings.ToLower(input.Format))
	if cfg.SizeFormat == "" {
		cfg.SizeFormat = schema.RangeFormat
	}
	if _, ok := schema.ValidSizeFormats[cfg.SizeFormat]; !ok {
		return fmt.Errorf("invalid size format '%s'. must be range, minmax, average, max, raw", input.Format)
	}

	return nil
}

// processHeaderWindow parses the explicit header window. Both ends or neither must be set.
func processHeaderWindow(cfg *Config, input *ConfigRawInput) error {
	if input.Start == "" && input.End == "" {
		cfg.HasHeaderWindow = false
		return nil
	}
	if input.Start == "" || input.End == "" {
		return fmt.Errorf("--start and --end must be provided together")
	}
	window, err := algo.NewWindow(input.Start, input.End)
	if err != nil {
		return fmt.Errorf("invalid header window: %w", err)
	}
	cfg.HeaderWindow = window
	cfg.HasHeaderWindow = true
	return nil
}

// resolveInputPath makes the input path absolute and checks it is a readable file.
func resolveInputPath(cfg *Config, input *ConfigRawInput) error {
	if input.InputPathStr == "" {
		cfg.InputPath = ""
		return nil
	}
	absPath, err := filepath.Abs(input.InputPathStr)
	if err != nil {
		return err
	}
	absPath = filepath.Clean(absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("input file %q: %w", input.InputPathStr, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %q is a directory, expected a .csv or .xlsx file", input.InputPathStr)
	}
	cfg.InputPath = absPath
	return nil
}

// RevalidateInput resolves a new input path on an already validated config.
func RevalidateInput(cfg *Config, inputPath string) error {
	if strings.TrimSpace(inputPath) == "" {
		return fmt.Errorf("input_path is required")
	}
	return resolveInputPath(cfg, &ConfigRawInput{InputPathStr: inputPath})
}

// RevalidateHeaderWindow parses a new header window on an already validated config.
func RevalidateHeaderWindow(cfg *Config, start, end string) error {
	return processHeaderWindow(cfg, &ConfigRawInput{Start: start, End: end})
}

// RevalidateSizeFormat parses a new size format; empty keeps the current one.
func RevalidateSizeFormat(cfg *Config, format string) error {
	if format == "" {
		return nil
	}
	f := schema.SizeFormat(strings.ToLower(format))
	if _, ok := schema.ValidSizeFormats[f]; !ok {
		return fmt.Errorf("invalid size format '%s'. must be range, minmax, average, max, raw", format)
	}
	cfg.SizeFormat = f
	return nil
}

// RevalidateBackend parses the order store settings alone, for commands that
// do not read a sheet.
func RevalidateBackend(cfg *Config, backend, connStr string) error {
	return validateBackendConfigs(cfg, &ConfigRawInput{OrderBackend: backend, OrderDBConnect: connStr})
}
