// =============================================================================
// EDI Document Renderer - Configuration Module
// =============================================================================
//
// This module loads the main application configuration. Settings come from
// three places, later ones winning:
//
//   1. Built-in defaults (see Default)
//   2. The YAML config file (config.yaml), when present
//   3. EDIRENDER_* environment variables, e.g. EDIRENDER_OUTPUT_DIR
//
// Layouts are not configured here; they live as version manifests in
// LayoutsDir and are read by the layout resolver.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "EDIRENDER"

// DefaultConfigFile is read when no --config flag is given.
const DefaultConfigFile = "config.yaml"

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is the directory scanned for X12 files.
	// Default: "./input"
	InputDir string `yaml:"input_dir" envconfig:"INPUT_DIR"`

	// OutputDir is where rendered documents are written.
	// Default: "./output"
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`

	// InputArchiveDir is where inputs are moved after successful processing.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir" envconfig:"INPUT_ARCHIVE_DIR"`

	// LayoutsDir holds layout version manifests and layout files.
	// Default: "./layouts"
	LayoutsDir string `yaml:"layouts_dir" envconfig:"LAYOUTS_DIR"`

	// InputPatterns are glob patterns matched against file names in InputDir.
	// Default: ["*.edi", "*.x12", "*.txt"]
	InputPatterns []string `yaml:"input_patterns" envconfig:"INPUT_PATTERNS"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputFormats lists the formats produced for every input.
	// Valid values: "pdf", "xlsx", "html"
	// Default: all three
	OutputFormats []string `yaml:"output_formats" envconfig:"OUTPUT_FORMATS"`

	// OutputNameFormat defines output file names, without extension.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	//   {original}  - Input file name without extension
	//   {type}      - Transaction type code(s) of the input
	//   {control}   - Interchange control number
	//   {index}     - Position of the input in the run, starting at 1
	// Default: "{original}_{type}_{timestamp}"
	OutputNameFormat string `yaml:"output_name_format" envconfig:"OUTPUT_NAME_FORMAT"`

	// PDFUncompressed writes PDF content streams without compression.
	// Default: false
	PDFUncompressed bool `yaml:"pdf_uncompressed" envconfig:"PDF_UNCOMPRESSED"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// LogFormat selects the log encoding.
	// Valid values: "text", "json"
	// Default: "text"
	LogFormat string `yaml:"log_format" envconfig:"LOG_FORMAT"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency is the maximum number of files processed at once.
	// Set to 1 for sequential processing.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency" envconfig:"MAX_CONCURRENCY"`

	// ContinueOnError keeps processing other files when one fails.
	// Default: true
	ContinueOnError bool `yaml:"continue_on_error" envconfig:"CONTINUE_ON_ERROR"`

	// ArchiveInputs moves successfully processed inputs to InputArchiveDir.
	// Default: true
	ArchiveInputs bool `yaml:"archive_inputs" envconfig:"ARCHIVE_INPUTS"`
}

// Default returns the configuration used when nothing is set.
func Default() *MainConfig {
	config := &MainConfig{
		ContinueOnError: true,
		ArchiveInputs:   true,
	}
	applyMainConfigDefaults(config)
	return config
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// LoadMainConfig loads the main configuration from configPath. A missing
// file is not an error when configPath is the default file name; defaults
// and environment overrides still apply.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	config := Default()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && configPath == DefaultConfigFile:
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, config); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	// Values emptied by the file or environment fall back to defaults.
	applyMainConfigDefaults(config)

	if err := validateMainConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyMainConfigDefaults sets default values for unset fields.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "./output"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.LayoutsDir == "" {
		config.LayoutsDir = "./layouts"
	}
	if len(config.InputPatterns) == 0 {
		config.InputPatterns = []string{"*.edi", "*.x12", "*.txt"}
	}
	if len(config.OutputFormats) == 0 {
		config.OutputFormats = []string{"pdf", "xlsx", "html"}
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{original}_{type}_{timestamp}"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = 4
	}
}

// validateMainConfig checks values that have a closed set of options.
func validateMainConfig(config *MainConfig) error {
	for _, f := range config.OutputFormats {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "pdf", "xlsx", "html":
		default:
			return fmt.Errorf("unsupported output format %q", f)
		}
	}

	switch strings.ToLower(config.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported log format %q", config.LogFormat)
	}

	switch strings.ToLower(config.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unsupported log level %q", config.LogLevel)
	}

	return nil
}

// EnsureDirectories creates the working directories if they do not exist.
func (c *MainConfig) EnsureDirectories() error {
	dirs := []string{c.InputDir, c.OutputDir, c.LayoutsDir}
	if c.ArchiveInputs {
		dirs = append(dirs, c.InputArchiveDir)
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}
	return nil
}
