package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/mutker/batstat/internal/config"
	"codeberg.org/mutker/batstat/internal/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "batstat.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output = "/var/log/battery.csv"
csv = true
quiet = true
color = false
log_level = "debug"
history = true
history_db = "/path/to/history.db"
lock_file = "/run/batstat.pid"
`)
	t.Setenv("BATSTAT_CONFIG", path)

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "/var/log/battery.csv", cfg.Output)
	assert.True(t, cfg.CSV)
	assert.True(t, cfg.Quiet)
	assert.False(t, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.History)
	assert.Equal(t, "/path/to/history.db", cfg.HistoryDB)
	assert.Equal(t, "/run/batstat.pid", cfg.LockFile)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BATSTAT_CONFIG", "")

	cfg, err := config.Load(nil, config.WithEnvPrefix("BATSTAT_TEST_DEFAULTS"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultOutput, cfg.Output)
	assert.True(t, cfg.CSV)
	assert.False(t, cfg.Quiet)
	assert.True(t, cfg.Color)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.History)
	assert.Equal(t, config.DefaultHistoryDB, cfg.HistoryDB)
	assert.Equal(t, filepath.Join(os.TempDir(), "batstat.pid"), cfg.LockFile)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	path := writeConfig(t, `
This is not a valid TOML file
`)

	_, err := config.Load(nil, config.WithConfigFile(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := config.Load(nil, config.WithConfigFile(filepath.Join(t.TempDir(), "absent.toml")))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestInvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `
log_level = "invalid"
`)

	_, err := config.Load(nil, config.WithConfigFile(path))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
	assert.Contains(t, err.Error(), "invalid")
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
output = "from-file.csv"
log_level = "error"
`)

	cfg, err := config.Load([]string{"--log-level", "debug", "-o", "from-flag.csv", "--history"},
		config.WithConfigFile(path))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "from-flag.csv", cfg.Output)
	assert.True(t, cfg.History)
}

func TestConfigFlag(t *testing.T) {
	path := writeConfig(t, `
quiet = true
`)
	t.Setenv("BATSTAT_CONFIG", "")

	cfg, err := config.Load([]string{"--config", path})
	require.NoError(t, err)
	assert.True(t, cfg.Quiet)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "error"
`)
	t.Setenv("BATSTAT_LOG_LEVEL", "info")
	t.Setenv("BATSTAT_CSV", "false")

	cfg, err := config.Load(nil, config.WithConfigFile(path))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.CSV)
}

func TestEmptyOutputRejected(t *testing.T) {
	t.Setenv("BATSTAT_CONFIG", "")

	_, err := config.Load([]string{"--output", ""}, config.WithEnvPrefix("BATSTAT_TEST_OUTPUT"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidOutput))

	cfg, err := config.Load([]string{"--output", "", "--csv=false"}, config.WithEnvPrefix("BATSTAT_TEST_OUTPUT"))
	require.NoError(t, err)
	assert.False(t, cfg.CSV)
}

func TestUnknownFlag(t *testing.T) {
	_, err := config.Load([]string{"--source", "/sys/class/power_supply/BAT1/uevent"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidArgument))
}

func TestHelpFlag(t *testing.T) {
	_, err := config.Load([]string{"--help"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pflag.ErrHelp))
}

func TestLogLevelIsValid(t *testing.T) {
	assert.True(t, config.LogLevelWarning.IsValid())
	assert.False(t, config.LogLevel("verbose").IsValid())
	assert.Equal(t, "info", config.LogLevelInfo.String())
}
