package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/skillscope/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 20
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultMineTimeout = 2 * time.Minute
)

// Config holds the validated runtime configuration for a scan. Simple
// fields are bound directly from flags; fields that need parsing (output
// mode, backend, timeout) are set by ProcessAndValidate from the raw
// input struct.
type Config struct {
	ArchivePath string                // Path to the archive to analyze (positional arg)
	Detailed    bool                  // Mine version-control history for repository roots
	Output      schema.OutputMode     // Output format
	OutputFile  string                // Optional path to write output to
	Precision   int                   // Decimal precision for numeric columns
	ResultLimit int                   // Maximum projects shown in ranked output
	Backend     schema.StorageBackend // Scan storage backend
	ConnStr     string                // Database connection string for mysql/postgresql
	Save        bool                  // Persist the report to the scan store
	Color       bool                  // Colored labels in table output
	Width       int                   // Terminal width override (0 = auto-detect)
	MineTimeout time.Duration         // Per-repository mining ceiling
	Filters     *schema.Filters       // Classification lookup tables
}

// Clone returns a copy of the Config struct. The filter tables are shared
// because they are read-only after construction.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw inputs from flags/env/file that require
// parsing or validation before use. Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ArchivePathStr string

	OutputStr      string `mapstructure:"output"`
	OutputFileStr  string `mapstructure:"output-file"`
	PrecisionInt   int    `mapstructure:"precision"`
	ResultLimit    int    `mapstructure:"limit"`
	BackendStr     string `mapstructure:"backend"`
	ConnStr        string `mapstructure:"db-connect"`
	ColorStr       string `mapstructure:"color"`
	Width          int    `mapstructure:"width"`
	MineTimeoutStr string `mapstructure:"mine-timeout"`
	Detailed       bool   `mapstructure:"detailed"`
	Save           bool   `mapstructure:"save"`

	// Classification table overrides from the config file, merged on top
	// of the built-in defaults.
	Filters *schema.Filters `mapstructure:"filters"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and fills the final Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. ResultLimit ---
	if input.ResultLimit <= 0 || input.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.ResultLimit)
	}
	cfg.ResultLimit = input.ResultLimit

	// --- 2. Precision ---
	if input.PrecisionInt < 1 || input.PrecisionInt > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.PrecisionInt)
	}
	cfg.Precision = input.PrecisionInt

	// --- 3. Output mode ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.OutputStr))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format %q. must be text, csv, json", input.OutputStr)
	}

	// --- 4. Storage backend ---
	cfg.Backend = schema.StorageBackend(strings.ToLower(input.BackendStr))
	if _, ok := schema.ValidStorageBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid storage backend %q. must be sqlite, mysql, postgresql, none", input.BackendStr)
	}
	cfg.ConnStr = input.ConnStr
	if cfg.Backend == schema.NoneBackend && input.Save {
		return fmt.Errorf("cannot save scans with storage backend %q", schema.NoneBackend)
	}

	// --- 5. Color ---
	colorOn, err := ParseBoolString(input.ColorStr)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.Color = colorOn

	// --- 6. Width ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 7. Mining timeout ---
	cfg.MineTimeout = DefaultMineTimeout
	if input.MineTimeoutStr != "" {
		d, err := time.ParseDuration(input.MineTimeoutStr)
		if err != nil {
			return fmt.Errorf("invalid mine timeout %q: %w", input.MineTimeoutStr, err)
		}
		if d <= 0 {
			return fmt.Errorf("mine timeout must be positive (received %s)", d)
		}
		cfg.MineTimeout = d
	}

	cfg.Detailed = input.Detailed
	cfg.Save = input.Save
	cfg.OutputFile = input.OutputFileStr
	cfg.ArchivePath = input.ArchivePathStr

	if cfg.Filters == nil {
		cfg.Filters = schema.DefaultFilters()
	}
	if input.Filters != nil {
		mergeFilters(cfg.Filters, input.Filters)
	}
	return nil
}

// mergeFilters layers user-provided classification entries on top of the
// built-in tables.
func mergeFilters(base, extra *schema.Filters) {
	for ext, cat := range extra.ExtCategory {
		base.ExtCategory[strings.ToLower(ext)] = cat
	}
	for ext, lang := range extra.ExtLanguage {
		base.ExtLanguage[strings.ToLower(ext)] = lang
	}
	for lang, skill := range extra.LangSkill {
		base.LangSkill[lang] = skill
	}
	for ext, skill := range extra.ExtSkill {
		base.ExtSkill[strings.ToLower(ext)] = skill
	}
	for name, fw := range extra.Frameworks {
		base.Frameworks[strings.ToLower(name)] = fw
	}
}
