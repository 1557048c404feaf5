package app

import (
	"fmt"
	"log/slog"
	"time"

	"seriestat/adapters/stats/engine"
	"seriestat/domain/core"
	"seriestat/domain/series"
	"seriestat/internal/config"
	"seriestat/internal/errors"
	"seriestat/internal/logging"
	"seriestat/internal/report"
	"seriestat/ports"
)

// AnalysisService owns one loaded series for the duration of the run. The
// constructor loads and validates the data and computes the constants; the
// chart methods render one image each and log their elapsed time.
type AnalysisService struct {
	cfg      *config.Config
	log      *slog.Logger
	engine   *engine.Engine
	renderer ports.ChartRenderer

	runID       core.RunID
	fingerprint core.Fingerprint

	series  *series.Series
	summary series.Summary
	bins    series.Bins
	rms     []float64

	charts  []string
	timings []report.Timing
}

// NewAnalysisService loads the series, logs the run header and computes the
// summary statistics and bin edges
func NewAnalysisService(cfg *config.Config, log *slog.Logger, reader ports.SeriesReader, renderer ports.ChartRenderer) (*AnalysisService, error) {
	svc := &AnalysisService{
		cfg:      cfg,
		log:      log,
		engine:   engine.New(cfg.Analysis.BinCount, cfg.Analysis.WindowDivisor),
		renderer: renderer,
		runID:    core.NewRunID(),
	}

	logging.Banner(log)

	s, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load series")
	}
	svc.series = s
	svc.fingerprint = core.NewFingerprint(s.Source, fmt.Sprint(s.Len()))

	log.Info("Run", "run_id", svc.runID, "source", s.Source, "fingerprint", svc.fingerprint)

	// A wrong column count is a warning, not a stop: the first two columns
	// are analyzed regardless.
	for _, warn := range s.Warnings() {
		log.Warn(warn)
	}

	log.Info("---------- Header ----------")
	log.Info("\n" + s.Head(cfg.Analysis.HeadRows))

	if err := svc.calcConstants(); err != nil {
		return nil, err
	}
	svc.calcBins()

	return svc, nil
}

// calcConstants computes and logs the column titles, row count and the
// min/max/mean/median/mode of the dependent column
func (a *AnalysisService) calcConstants() error {
	start := time.Now()

	a.log.Info("---------- Constants ----------")
	a.log.Info("Columns", "x", a.series.XTitle, "y", a.series.YTitle)
	a.log.Info("Row Count", "rows", a.series.Len())

	summary, err := a.engine.Summarize(a.series)
	if err != nil {
		return errors.Wrap(err, "failed to compute summary statistics")
	}
	a.summary = summary

	a.log.Info("Y extent", "max", summary.Max, "min", summary.Min)
	a.log.Info("-------------- MMM ---------------")
	a.log.Info("Central tendency", "mean", summary.Mean, "median", summary.Median, "mode", summary.Mode)

	a.recordTiming("Constants", "calculated", time.Since(start))
	return nil
}

// calcBins computes and logs the ten-bin partition of [min, max]
func (a *AnalysisService) calcBins() {
	start := time.Now()

	a.bins = a.engine.Bins(a.summary)

	a.log.Info("---------- Bins List ----------")
	a.log.Info("Bin edges", "edges", a.bins.Edges, "width", a.bins.Width)
	a.recordTiming("Bins", "calculated", time.Since(start))
}

// Histogram renders the binned frequency chart
func (a *AnalysisService) Histogram() (string, error) {
	return a.renderChart("Histogram", func() (string, error) {
		return a.renderer.Histogram(a.series, a.bins)
	})
}

// LineRaw renders the raw line chart
func (a *AnalysisService) LineRaw() (string, error) {
	return a.renderChart("Raw Line Graph", func() (string, error) {
		return a.renderer.LineRaw(a.series)
	})
}

// LineDiff renders the first-difference line chart
func (a *AnalysisService) LineDiff() (string, error) {
	return a.renderChart("Line Graph of Difference in Y", func() (string, error) {
		return a.renderer.LineDiff(a.series)
	})
}

// LineRMS renders the rolling RMS line chart
func (a *AnalysisService) LineRMS() (string, error) {
	return a.renderChart("Line Graph of RMS", func() (string, error) {
		return a.renderer.LineRMS(a.series, a.RollingRMS())
	})
}

// RollingRMS computes (once) the rolling RMS of the dependent column
func (a *AnalysisService) RollingRMS() []float64 {
	if a.rms == nil {
		a.rms = a.engine.RollingRMS(a.series.Y)
	}
	return a.rms
}

// RunAll renders every chart type and returns the written paths
func (a *AnalysisService) RunAll() ([]string, error) {
	type op func() (string, error)
	for _, run := range []op{a.Histogram, a.LineRaw, a.LineDiff, a.LineRMS} {
		if _, err := run(); err != nil {
			return nil, err
		}
	}
	return a.charts, nil
}

// WriteReport writes the Markdown and HTML run reports next to the charts
func (a *AnalysisService) WriteReport() (string, string, error) {
	return report.Write(a.cfg.Output.Dir, report.Data{
		RunID:       a.runID,
		Fingerprint: a.fingerprint,
		Series:      a.series,
		Summary:     a.summary,
		Bins:        a.bins,
		Charts:      a.charts,
		Timings:     a.timings,
	})
}

func (a *AnalysisService) renderChart(name string, render func() (string, error)) (string, error) {
	start := time.Now()
	path, err := render()
	if err != nil {
		return "", err
	}
	elapsed := time.Since(start)
	a.charts = append(a.charts, path)
	a.recordTiming(name, "created", elapsed)
	return path, nil
}

func (a *AnalysisService) recordTiming(name, verb string, elapsed time.Duration) {
	a.timings = append(a.timings, report.Timing{Name: name, Elapsed: elapsed})
	a.log.Info(fmt.Sprintf("%s %s in %.4fs", name, verb, elapsed.Seconds()))
}

// Series returns the loaded table
func (a *AnalysisService) Series() *series.Series { return a.series }

// Summary returns the computed scalar statistics
func (a *AnalysisService) Summary() series.Summary { return a.summary }

// Bins returns the computed bin partition
func (a *AnalysisService) Bins() series.Bins { return a.bins }

// RunID returns this run's identifier
func (a *AnalysisService) RunID() core.RunID { return a.runID }
