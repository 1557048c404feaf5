package engine

import (
	"seriestat/domain/series"
)

// Bins partitions [min, max] into the configured number of equal-width bins
func (e *Engine) Bins(sum series.Summary) series.Bins {
	width := (sum.Max - sum.Min) / float64(e.binCount)

	edges := make([]float64, e.binCount+1)
	floor := sum.Min
	for i := range edges {
		edges[i] = floor
		floor += width
	}
	// Accumulated float error must not push the final edge off the observed
	// maximum; the edges span exactly [min, max].
	edges[len(edges)-1] = sum.Max

	return series.Bins{Edges: edges, Width: width}
}
