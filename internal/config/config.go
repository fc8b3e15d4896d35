// =============================================================================
// CSV/Excel Converter - Configuration Module
// =============================================================================
//
// This module is responsible for loading the application configuration.
//
// CONFIGURATION SOURCES (later sources win):
//   1. Built-in defaults
//   2. The YAML configuration file (config.yaml), when present
//   3. A .env file in the working directory, when present
//   4. Environment variables (CSV2EXCEL_*)
//
// Command line flags are applied on top of the loaded configuration by the
// cmd package.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file used when none is given.
const DefaultPath = "config.yaml"

// Environment variables overriding the configuration file.
const (
	EnvLogLevel    = "CSV2EXCEL_LOG_LEVEL"
	EnvLogFormat   = "CSV2EXCEL_LOG_FORMAT"
	EnvLogFile     = "CSV2EXCEL_LOG_FILE"
	EnvDestination = "CSV2EXCEL_DESTINATION"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// CONVERSION DEFAULTS
	// =========================================================================

	// Defaults holds the preselected labels (or symbols) of every option.
	// Empty values select the first entry of the option table.
	Defaults Defaults `yaml:"defaults"`

	// DestinationDir is the folder receiving converted files.
	DestinationDir string `yaml:"destination_dir"`

	// =========================================================================
	// WORKBOOK SETTINGS
	// =========================================================================

	// SheetName is the sheet written when the target is a workbook.
	// Default: "Sheet1"
	SheetName string `yaml:"sheet_name"`

	// SourceSheet is the sheet read when the origin is a workbook.
	// Empty reads the first sheet.
	SourceSheet string `yaml:"source_sheet"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel is the minimum level written to the log.
	// Options: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log formatter.
	// Options: "text", "json"
	LogFormat string `yaml:"log_format"`

	// LogFile is the path to the log file. Empty logs to stderr.
	LogFile string `yaml:"log_file"`

	// SummaryLog writes processing_summary_<timestamp>.txt into the
	// destination folder after each run.
	SummaryLog bool `yaml:"summary_log"`
}

// Defaults holds the preselected option values.
type Defaults struct {
	Mode      string `yaml:"mode"`
	Separator string `yaml:"separator"`
	Decimal   string `yaml:"decimal"`
	QuoteChar string `yaml:"quote_char"`
	Encoding  string `yaml:"encoding"`
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load loads the configuration.
//
// PARAMETERS:
//   - configPath: The path to the YAML file.
//   - required: Whether a missing file is an error. When false a missing
//     file leaves the built-in defaults in place.
//
// RETURNS:
//   - A pointer to the loaded Config.
//   - An error if the file cannot be read or parsed, or a value is invalid.
func Load(configPath string, required bool) (*Config, error) {
	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !required:
		// Run on defaults.
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// A missing .env file is not an error.
	_ = godotenv.Load()
	applyEnv(&config)

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyEnv copies the environment overrides into the configuration.
func applyEnv(config *Config) {
	config.LogLevel = getEnv(EnvLogLevel, config.LogLevel)
	config.LogFormat = getEnv(EnvLogFormat, config.LogFormat)
	config.LogFile = getEnv(EnvLogFile, config.LogFile)
	config.DestinationDir = getEnv(EnvDestination, config.DestinationDir)
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.SheetName == "" {
		config.SheetName = "Sheet1"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
	config.LogLevel = strings.ToLower(config.LogLevel)
	config.LogFormat = strings.ToLower(config.LogFormat)
}

// validate validates the configuration.
func validate(config *Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", config.LogLevel)
	}

	switch config.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q", config.LogFormat)
	}

	if len(config.SheetName) > 31 {
		return fmt.Errorf("sheet_name %q is longer than 31 characters", config.SheetName)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
