package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "results", cfg.Output.Dir)
	assert.Equal(t, "seriestat.log", cfg.Output.LogFile)
	assert.True(t, cfg.Output.Report)
	assert.False(t, cfg.Output.Show)
	assert.Equal(t, 10, cfg.Analysis.BinCount)
	assert.Equal(t, 30, cfg.Analysis.WindowDivisor)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERIESTAT_OUT_DIR", "out")
	t.Setenv("SERIESTAT_BIN_COUNT", "5")
	t.Setenv("SERIESTAT_SHOW", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, 5, cfg.Analysis.BinCount)
	assert.True(t, cfg.Output.Show)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SERIESTAT_WINDOW_DIVISOR", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIgnoresUnparsableEnv(t *testing.T) {
	t.Setenv("SERIESTAT_BIN_COUNT", "ten")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Analysis.BinCount)
}
