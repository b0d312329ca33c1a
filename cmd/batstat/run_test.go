package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mutker/batstat/internal/config"
	"codeberg.org/mutker/batstat/internal/errors"
	"codeberg.org/mutker/batstat/internal/sysfs"
)

const snapshot = `POWER_SUPPLY_NAME=BAT0
POWER_SUPPLY_STATUS=Charging
POWER_SUPPLY_VOLTAGE_NOW=12000000
POWER_SUPPLY_ENERGY_NOW=45000000
POWER_SUPPLY_CAPACITY=80
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Output:    "/out/battery.csv",
		CSV:       true,
		LogLevel:  config.DefaultLogLevel,
		HistoryDB: filepath.Join(t.TempDir(), "history.db"),
		LockFile:  filepath.Join(t.TempDir(), "batstat.pid"),
	}
}

func testFs(t *testing.T, content string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, sysfs.UeventPath, []byte(content), 0o444))

	return fs
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	fs := testFs(t, snapshot)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), cfg, fs, &out))
	assert.Equal(t, "charging SoC: 80%, 45Wh, 12V\n", out.String())

	content, err := afero.ReadFile(fs, cfg.Output)
	require.NoError(t, err)

	fields := strings.Split(strings.TrimSuffix(string(content), "\n"), ", ")
	require.Len(t, fields, 5)
	_, err = strconv.ParseInt(fields[0], 10, 64)
	require.NoError(t, err)
	assert.Equal(t, []string{"charging", "12", "45", "80"}, fields[1:])

	assert.NoFileExists(t, cfg.LockFile)
	assert.NoFileExists(t, cfg.HistoryDB)
}

func TestRunQuietWithoutCSV(t *testing.T) {
	cfg := testConfig(t)
	cfg.Quiet = true
	cfg.CSV = false
	fs := testFs(t, snapshot)
	var out bytes.Buffer

	require.NoError(t, run(context.Background(), cfg, fs, &out))
	assert.Empty(t, out.String())

	exists, err := afero.Exists(fs, cfg.Output)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunWithHistory(t *testing.T) {
	cfg := testConfig(t)
	cfg.History = true

	require.NoError(t, run(context.Background(), cfg, testFs(t, snapshot), &bytes.Buffer{}))
	assert.FileExists(t, cfg.HistoryDB)
}

func TestRunParseErrorWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	fs := testFs(t, strings.Replace(snapshot, "POWER_SUPPLY_CAPACITY=80\n", "", 1))
	var out bytes.Buffer

	err := run(context.Background(), cfg, fs, &out)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAttributeNotFound))
	assert.Empty(t, out.String())

	exists, err := afero.Exists(fs, cfg.Output)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunMissingSource(t *testing.T) {
	err := run(context.Background(), testConfig(t), afero.NewMemMapFs(), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrReadSource))
}

func TestRunRefusesConcurrentAppend(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.LockFile, []byte(strconv.Itoa(os.Getppid())), 0o600))

	err := run(context.Background(), cfg, testFs(t, snapshot), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrAlreadyRunning))
}
