package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLengthMismatch(t *testing.T) {
	_, err := New("test", "t", "v", []float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestDiff(t *testing.T) {
	s, err := New("test", "t", "v", []float64{0, 1, 2, 3}, []float64{1.0, 3.0, 2.0, 6.0})
	require.NoError(t, err)

	d := s.Diff()
	require.Len(t, d, s.Len()-1)
	assert.Equal(t, []float64{2.0, -1.0, 4.0}, d)
}

func TestDiffShortSeries(t *testing.T) {
	s, err := New("test", "t", "v", []float64{0}, []float64{1.0})
	require.NoError(t, err)
	assert.Nil(t, s.Diff())
}

func TestWarningsColumnCount(t *testing.T) {
	s, err := New("test", "t", "v", []float64{0, 1}, []float64{1, 2})
	require.NoError(t, err)
	assert.Empty(t, s.Warnings())

	s.ColumnCount = 3
	warns := s.Warnings()
	require.Len(t, warns, 2)
	assert.Contains(t, warns[0], "fewer or more than two columns")
}

func TestInferUnit(t *testing.T) {
	tests := []struct {
		name string
		want Unit
	}{
		{"Pack_Volt_Data", UnitVoltage},
		{"pack_VOLTAGE_log", UnitVoltage},
		{"Current_Data", UnitCurrent},
		{"sensor_readings", UnitUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InferUnit(tt.name), tt.name)
	}
}

func TestUnitLabels(t *testing.T) {
	assert.Equal(t, "Volts (V)", UnitVoltage.AxisLabel())
	assert.Equal(t, "Change in Current (Amps)", UnitCurrent.DiffAxisLabel())
	assert.Equal(t, "RMS in Y-Value (unit unknown)", UnitUnknown.RMSAxisLabel())
	assert.Equal(t, "Voltage (V) by Bins [0-10] - Bin Range 0.5", UnitVoltage.HistogramLabel(0.5))
}

func TestStem(t *testing.T) {
	assert.Equal(t, "Pack_Volt_Data", Stem("data/Pack_Volt_Data.csv"))
	assert.Equal(t, "readings", Stem("readings.xlsx"))
}

func TestHead(t *testing.T) {
	s, err := New("test", "Time", "Volt", []float64{0, 1, 2}, []float64{5, 6, 7})
	require.NoError(t, err)

	head := s.Head(2)
	assert.Contains(t, head, "Time,Volt")
	assert.Contains(t, head, "0,5")
	assert.Contains(t, head, "(3 rows)")
}
