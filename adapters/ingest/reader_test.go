package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeCSV(t, "Pack_Volt_Data.csv", "Time (s),Voltage\n0,3.7\n1,3.8\n2,3.6\n")

	s, err := NewDataReader(path).Read()
	require.NoError(t, err)

	assert.Equal(t, "Pack_Volt_Data", s.Name)
	assert.Equal(t, "Time (s)", s.XTitle)
	assert.Equal(t, "Voltage", s.YTitle)
	assert.Equal(t, 2, s.ColumnCount)
	assert.Equal(t, []float64{0, 1, 2}, s.X)
	assert.Equal(t, []float64{3.7, 3.8, 3.6}, s.Y)
	assert.Empty(t, s.Warnings())
}

func TestReadCSVExtraColumns(t *testing.T) {
	path := writeCSV(t, "wide.csv", "t,v,extra\n0,1.5,x\n1,2.5,y\n")

	s, err := NewDataReader(path).Read()
	require.NoError(t, err)

	// Extra columns are a warning, not an error; data comes from the first two.
	assert.Equal(t, 3, s.ColumnCount)
	assert.NotEmpty(t, s.Warnings())
	assert.Equal(t, []float64{1.5, 2.5}, s.Y)
}

func TestReadCSVSingleColumn(t *testing.T) {
	path := writeCSV(t, "narrow.csv", "v\n1.5\n")

	_, err := NewDataReader(path).Read()
	assert.Error(t, err)
}

func TestReadCSVNonNumeric(t *testing.T) {
	path := writeCSV(t, "bad.csv", "t,v\n0,notanumber\n")

	_, err := NewDataReader(path).Read()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-numeric Y value")
}

func TestReadCSVTimestampX(t *testing.T) {
	path := writeCSV(t, "dated.csv", "ds,y\n2024-01-01,1\n2024-01-02,2\n")

	s, err := NewDataReader(path).Read()
	require.NoError(t, err)
	require.Len(t, s.X, 2)
	assert.InDelta(t, 86400, s.X[1]-s.X[0], 1e-9, "day apart in Unix seconds")
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "absent.csv")).Read()
	assert.Error(t, err)
}

func TestReadEmptyDataset(t *testing.T) {
	path := writeCSV(t, "empty.csv", "t,v\n")

	_, err := NewDataReader(path).Read()
	assert.Error(t, err)
}
