package charts

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"seriestat/adapters/stats/engine"
	"seriestat/domain/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sineSeries(t *testing.T, n int) *series.Series {
	t.Helper()
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * 0.01
		y[i] = 3.7 + 0.5*math.Sin(x[i]*20)
	}
	s, err := series.New("Pack_Volt_Data", "Time (s)", "Voltage", x, y)
	require.NoError(t, err)
	return s
}

func assertNonEmptyPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "chart file must exist")
	assert.Greater(t, info.Size(), int64(0), "chart file must be non-empty")
	assert.Equal(t, ".png", filepath.Ext(path))
}

func TestHistogramProducesFile(t *testing.T) {
	dir := t.TempDir()
	s := sineSeries(t, 200)
	e := engine.New(10, 30)

	sum, err := e.Summarize(s)
	require.NoError(t, err)

	path, err := NewRenderer(dir).Histogram(s, e.Bins(sum))
	require.NoError(t, err)
	assert.Contains(t, path, "Pack_Volt_Data_histogram.png")
	assertNonEmptyPNG(t, path)
}

func TestLineRawProducesFile(t *testing.T) {
	dir := t.TempDir()
	s := sineSeries(t, 200)

	path, err := NewRenderer(dir).LineRaw(s)
	require.NoError(t, err)
	assert.Contains(t, path, "Pack_Volt_Data_linegraph_raw.png")
	assertNonEmptyPNG(t, path)
}

func TestLineDiffProducesFile(t *testing.T) {
	dir := t.TempDir()
	s := sineSeries(t, 200)

	path, err := NewRenderer(dir).LineDiff(s)
	require.NoError(t, err)
	assert.Contains(t, path, "Pack_Volt_Data_linegraph_raw_diff.png")
	assertNonEmptyPNG(t, path)
}

func TestLineRMSProducesFile(t *testing.T) {
	dir := t.TempDir()
	s := sineSeries(t, 200)
	e := engine.New(10, 30)

	path, err := NewRenderer(dir).LineRMS(s, e.RollingRMS(s.Y))
	require.NoError(t, err)
	assert.Contains(t, path, "Pack_Volt_Data_linegraph_rms.png")
	assertNonEmptyPNG(t, path)
}

func TestRendererCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results", "nested")
	s := sineSeries(t, 50)

	_, err := NewRenderer(dir).LineRaw(s)
	require.NoError(t, err)
}
