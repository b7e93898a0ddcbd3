package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/draftboard/pkg/errors"
)

// TestLoadConfig verifies defaults.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "./ffrd", config.RankingsDir)
	assert.Equal(t, "./files", config.OutputDir)
	assert.Equal(t, "./files", config.CacheDir)
	assert.Equal(t, "https://fantasyfootballcalculator.com/api/v1/adp", config.ADPBaseURL)
	assert.Equal(t, "https://api.sportsdata.io", config.SportsDataBaseURL)
	assert.Equal(t, "auto", config.LogFormat)
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("RANKINGS_DIR", "/srv/rankings")
	t.Setenv("SPORTSDATA_KEY", "  abc123  ")
	t.Setenv("LOG_LEVEL", "debug")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/srv/rankings", config.RankingsDir)
	assert.Equal(t, "abc123", config.SportsDataKey)
	assert.Equal(t, "debug", config.LogLevel)
}

// TestConfig_File verifies an explicit config file is read.
func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draftboard.yaml")
	content := "output_dir: ./boards\nmetrics_file: run.prom\naliases_file: aliases.yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, config.ConfigFile)
	assert.Equal(t, "./boards", config.OutputDir)
	assert.Equal(t, "run.prom", config.MetricsFile)
	assert.Equal(t, "aliases.yaml", config.AliasesFile)
	assert.Equal(t, "./files", config.CacheDir)
}

// TestConfig_MissingFile verifies an explicit config file must exist.
func TestConfig_MissingFile(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

// TestConfig_UpdateFromFlags verifies flags only override what they set.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "warn"}
	config.UpdateFromFlags(true, false, false, "", "")
	assert.True(t, config.Verbose)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "warn", config.LogLevel)

	config.UpdateFromFlags(false, false, true, "json", "error")
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "error", config.LogLevel)
}
