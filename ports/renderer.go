package ports

import "seriestat/domain/series"

// ChartRenderer renders the four chart types to image files and returns the
// written paths
type ChartRenderer interface {
	Histogram(s *series.Series, bins series.Bins) (string, error)
	LineRaw(s *series.Series) (string, error)
	LineDiff(s *series.Series) (string, error)
	LineRMS(s *series.Series, rms []float64) (string, error)
}
