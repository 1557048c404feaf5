package report

import (
	"math"
	"os"
	"testing"
	"time"

	"seriestat/domain/core"
	"seriestat/domain/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData(t *testing.T) Data {
	t.Helper()
	s, err := series.New("Pack_Volt_Data", "Time (s)", "Voltage",
		[]float64{0, 1, 2}, []float64{3.6, 3.7, 3.8})
	require.NoError(t, err)
	s.Source = "data/Pack_Volt_Data.csv"

	return Data{
		RunID:       core.NewRunID(),
		Fingerprint: core.NewFingerprint("data/Pack_Volt_Data.csv", "3"),
		Series:      s,
		Summary:     series.Summary{Rows: 3, Min: 3.6, Max: 3.8, Mean: 3.7, Median: 3.7, Mode: math.NaN()},
		Bins:        series.Bins{Edges: []float64{3.6, 3.7, 3.8}, Width: 0.1},
		Charts:      []string{"results/Pack_Volt_Data_histogram.png"},
		Timings:     []Timing{{Name: "Histogram", Elapsed: 12 * time.Millisecond}},
	}
}

func TestWriteReports(t *testing.T) {
	dir := t.TempDir()

	mdPath, htmlPath, err := Write(dir, testData(t))
	require.NoError(t, err)

	md, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	content := string(md)

	assert.Contains(t, content, "# Analysis Report: Pack_Volt_Data")
	assert.Contains(t, content, "| Mean | 3.7 |")
	assert.Contains(t, content, "n/a (all values unique)")
	assert.Contains(t, content, "Pack_Volt_Data_histogram.png")
	assert.Contains(t, content, "| Histogram | 0.0120s |")

	htmlData, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(htmlData), "<h1")
	assert.Contains(t, string(htmlData), "Pack_Volt_Data")
}
