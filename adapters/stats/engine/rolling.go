package engine

import (
	"math"
)

// Window returns the rolling RMS window size for a series of n rows:
// n divided by the configured divisor, clamped so the window always holds
// at least one prior point.
func (e *Engine) Window(n int) int {
	w := n / e.windowDivisor
	if w < 2 {
		w = 2
	}
	return w
}

// RollingRMS computes sqrt(mean(y^2)) over a sliding window. The window for
// row i covers rows [i-w+1, i-1] — it strictly excludes the current point —
// and shrinks at the start of the series. A row with an empty window (the
// first row) yields NaN. The output has the same length as the input.
func (e *Engine) RollingRMS(y []float64) []float64 {
	w := e.Window(len(y))

	out := make([]float64, len(y))
	var sumSq float64
	var count int
	for i := range y {
		if count == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = math.Sqrt(sumSq / float64(count))
		}

		// Slide: admit the current point for the next row, retire the point
		// that falls out of the window.
		sumSq += y[i] * y[i]
		count++
		if count == w {
			old := y[i-w+1]
			sumSq -= old * old
			count--
		}
	}
	return out
}
