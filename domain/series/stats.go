package series

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the scalar values derived from the dependent column
type Summary struct {
	Rows   int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Mode   float64
}

// Bins is a linear partition of the observed [min, max] range into
// equal-width intervals.
type Bins struct {
	Edges []float64 // n+1 monotone edges; Edges[0] == min, last == max
	Width float64
}

// Counts tallies the dependent column into the bins
func (b Bins) Counts(y []float64) []float64 {
	counts := make([]float64, len(b.Edges)-1)
	if len(y) == 0 {
		return counts
	}

	if b.Width == 0 {
		// Degenerate range: every value sits on the single edge value.
		counts[len(counts)-1] = float64(len(y))
		return counts
	}

	sorted := make([]float64, len(y))
	copy(sorted, y)
	sort.Float64s(sorted)

	// stat.Histogram treats each bin as [low, high); nudge the final divider
	// so values equal to the maximum land in the last bin.
	dividers := make([]float64, len(b.Edges))
	copy(dividers, b.Edges)
	dividers[len(dividers)-1] = math.Nextafter(b.Edges[len(b.Edges)-1], math.Inf(1))

	return stat.Histogram(counts, dividers, sorted, nil)
}
