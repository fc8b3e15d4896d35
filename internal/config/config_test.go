package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLogLevel, EnvLogFormat, EnvLogFile, EnvDestination} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", cfg.SheetName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.DestinationDir)
	assert.Equal(t, Defaults{}, cfg.Defaults)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
defaults:
  mode: csv-xlsx
  separator: ";"
  decimal: "Comma (,)"
  quote_char: '"'
  encoding: latin_1
destination_dir: /data/out
sheet_name: Export
source_sheet: Data
log_level: DEBUG
log_format: json
summary_log: true
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, Defaults{
		Mode:      "csv-xlsx",
		Separator: ";",
		Decimal:   "Comma (,)",
		QuoteChar: `"`,
		Encoding:  "latin_1",
	}, cfg.Defaults)
	assert.Equal(t, "/data/out", cfg.DestinationDir)
	assert.Equal(t, "Export", cfg.SheetName)
	assert.Equal(t, "Data", cfg.SourceSheet)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.SummaryLog)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log_level: info\ndestination_dir: /from/file\n")

	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvLogFile, "/tmp/csv2excel.log")
	t.Setenv(EnvDestination, "/from/env")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/tmp/csv2excel.log", cfg.LogFile)
	assert.Equal(t, "/from/env", cfg.DestinationDir)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	for name, content := range map[string]string{
		"bad yaml":   "defaults: [",
		"bad level":  "log_level: verbose\n",
		"bad format": "log_format: xml\n",
		"long sheet": "sheet_name: abcdefghijklmnopqrstuvwxyz0123456789\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content), true)
			assert.Error(t, err)
		})
	}
}
