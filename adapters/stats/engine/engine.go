package engine

import (
	"math"

	"seriestat/domain/series"
	"seriestat/internal/errors"

	"github.com/montanaflynn/stats"
)

// Engine provides the descriptive statistics for one series
type Engine struct {
	binCount      int
	windowDivisor int
}

// New creates a new statistical engine
func New(binCount, windowDivisor int) *Engine {
	if binCount < 1 {
		binCount = 10
	}
	if windowDivisor < 1 {
		windowDivisor = 30
	}
	return &Engine{
		binCount:      binCount,
		windowDivisor: windowDivisor,
	}
}

// Summarize computes min/max and mean/median/mode of the dependent column
func (e *Engine) Summarize(s *series.Series) (series.Summary, error) {
	if s.Len() == 0 {
		return series.Summary{}, errors.InvalidInput("cannot summarize an empty series")
	}

	min, err := stats.Min(s.Y)
	if err != nil {
		return series.Summary{}, errors.Wrap(err, "min failed")
	}
	max, err := stats.Max(s.Y)
	if err != nil {
		return series.Summary{}, errors.Wrap(err, "max failed")
	}
	mean, err := stats.Mean(s.Y)
	if err != nil {
		return series.Summary{}, errors.Wrap(err, "mean failed")
	}
	median, err := stats.Median(s.Y)
	if err != nil {
		return series.Summary{}, errors.Wrap(err, "median failed")
	}

	// Mode may be empty (all values unique) or multi-valued; report the
	// first modal value, NaN when there is none.
	mode := math.NaN()
	if modes, err := stats.Mode(s.Y); err == nil && len(modes) > 0 {
		mode = modes[0]
	}

	return series.Summary{
		Rows:   s.Len(),
		Min:    min,
		Max:    max,
		Mean:   mean,
		Median: median,
		Mode:   mode,
	}, nil
}
