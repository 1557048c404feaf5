package series

import (
	"fmt"
	"strings"
)

// Unit is the measurement unit of the dependent column, inferred from the
// source file name. Electrical captures are the common case; anything else
// is labeled as unknown rather than rejected.
type Unit int

const (
	UnitUnknown Unit = iota
	UnitVoltage
	UnitCurrent
)

// InferUnit guesses the unit from a file name
func InferUnit(name string) Unit {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "volt"):
		return UnitVoltage
	case strings.Contains(lower, "current"):
		return UnitCurrent
	default:
		return UnitUnknown
	}
}

func (u Unit) String() string {
	switch u {
	case UnitVoltage:
		return "voltage"
	case UnitCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// AxisLabel is the y-axis label for the raw line chart
func (u Unit) AxisLabel() string {
	switch u {
	case UnitVoltage:
		return "Volts (V)"
	case UnitCurrent:
		return "Current (Amps)"
	default:
		return "Y-Value (unit unknown)"
	}
}

// DiffAxisLabel is the y-axis label for the first-difference chart
func (u Unit) DiffAxisLabel() string {
	switch u {
	case UnitVoltage:
		return "Change in Volts (V)"
	case UnitCurrent:
		return "Change in Current (Amps)"
	default:
		return "Change in Y-Value (unit unknown)"
	}
}

// RMSAxisLabel is the y-axis label for the rolling RMS chart
func (u Unit) RMSAxisLabel() string {
	switch u {
	case UnitVoltage:
		return "V_RMS (V)"
	case UnitCurrent:
		return "I_RMS (A)"
	default:
		return "RMS in Y-Value (unit unknown)"
	}
}

// HistogramLabel is the x-axis label for the histogram, naming the unit and
// the computed bin width
func (u Unit) HistogramLabel(binWidth float64) string {
	switch u {
	case UnitVoltage:
		return histLabel("Voltage (V)", binWidth)
	case UnitCurrent:
		return histLabel("Current (A)", binWidth)
	default:
		return histLabel("Unknown Unit", binWidth)
	}
}

func histLabel(unit string, binWidth float64) string {
	return fmt.Sprintf("%s by Bins [0-10] - Bin Range %g", unit, binWidth)
}
