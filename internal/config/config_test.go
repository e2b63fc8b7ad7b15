package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataRoot)
	assert.Equal(t, "input_tickers/input_tickers.txt", cfg.TickerFile)
	assert.Equal(t, 500, cfg.DataSource.MinRequestGapMS)
	assert.Equal(t, []int{20, 50, 200}, cfg.Charts.MAPeriods)
	assert.Equal(t, "1d", cfg.DefaultInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.MinRequestGap())
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data_root: runs
data_source:
  min_request_gap_ms: 250
default_interval: 1h
charts:
  ma_periods: [10, 30]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("STOCKUNIVERSE_DATA_ROOT", "override")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "override", cfg.DataRoot)
	assert.Equal(t, 250, cfg.DataSource.MinRequestGapMS)
	assert.Equal(t, "1h", cfg.DefaultInterval)
	assert.Equal(t, []int{10, 30}, cfg.Charts.MAPeriods)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	cfg.DefaultInterval = "2h"
	assert.Error(t, cfg.Validate())

	cfg.DefaultInterval = "1d"
	cfg.Charts.MAPeriods = []int{0}
	assert.Error(t, cfg.Validate())

	cfg.Charts.MAPeriods = []int{20}
	cfg.DataSource.MinRequestGapMS = -1
	assert.Error(t, cfg.Validate())
}
