package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"seriestat/domain/series"
	"seriestat/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Renderer draws the four chart types to PNG files in a fixed output
// directory. Output names combine the series name with a chart-type suffix.
type Renderer struct {
	outDir string
}

// NewRenderer creates a renderer writing into outDir
func NewRenderer(outDir string) *Renderer {
	return &Renderer{outDir: outDir}
}

var (
	barFill  = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	lineBlue = color.RGBA{R: 30, G: 100, B: 200, A: 255}
)

// Histogram renders the dependent column binned over the computed edges,
// with a log-scale frequency axis and the edges as x-axis ticks.
func (r *Renderer) Histogram(s *series.Series, bins series.Bins) (string, error) {
	counts := bins.Counts(s.Y)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Histogram for: %s", s.Name)
	p.X.Label.Text = s.Unit().HistogramLabel(bins.Width)
	p.Y.Label.Text = "Frequency"

	hbins := make([]plotter.HistogramBin, len(counts))
	for i, c := range counts {
		hbins[i] = plotter.HistogramBin{Min: bins.Edges[i], Max: bins.Edges[i+1], Weight: c}
	}
	h := &plotter.Histogram{
		Bins:      hbins,
		FillColor: barFill,
		LineStyle: plotter.DefaultLineStyle,
		LogY:      true,
	}
	h.LineStyle.Color = color.Black
	p.Add(h)

	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	ticks := make([]plot.Tick, len(bins.Edges))
	for i, edge := range bins.Edges {
		ticks[i] = plot.Tick{Value: edge, Label: fmt.Sprintf("%.4g", edge)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	rotateTicks(p)

	return r.save(p, s.Name, "histogram")
}

// LineRaw renders the x column against the raw dependent column
func (r *Renderer) LineRaw(s *series.Series) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Raw Line Graph for: %s", s.Name)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = s.Unit().AxisLabel()

	if err := addLine(p, s.X, s.Y, vg.Points(0.5)); err != nil {
		return "", errors.RenderError("raw line", err)
	}
	rotateTicks(p)

	return r.save(p, s.Name, "linegraph_raw")
}

// LineDiff renders the first difference of the dependent column against its
// row index
func (r *Renderer) LineDiff(s *series.Series) (string, error) {
	diff := s.Diff()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Change in Y for: %s", s.Name)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = s.Unit().DiffAxisLabel()

	idx := make([]float64, len(diff))
	for i := range idx {
		idx[i] = float64(i)
	}
	if err := addLine(p, idx, diff, vg.Points(0.25)); err != nil {
		return "", errors.RenderError("diff line", err)
	}
	rotateTicks(p)

	return r.save(p, s.Name, "linegraph_raw_diff")
}

// LineRMS renders the x column against the rolling RMS of the dependent
// column. Rows with an empty window (NaN) are skipped.
func (r *Renderer) LineRMS(s *series.Series, rms []float64) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Root Mean Square Line Graph for: %s", s.Name)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = s.Unit().RMSAxisLabel()

	if err := addLine(p, s.X, rms, vg.Points(1)); err != nil {
		return "", errors.RenderError("rms line", err)
	}
	rotateTicks(p)

	return r.save(p, s.Name, "linegraph_rms")
}

// addLine plots y against x, dropping NaN points so the axis ranges stay
// finite
func addLine(p *plot.Plot, x, y []float64, width vg.Length) error {
	pts := make(plotter.XYs, 0, len(y))
	for i := range y {
		if math.IsNaN(y[i]) || math.IsNaN(x[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}

	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.Color = lineBlue
	l.LineStyle.Width = width
	p.Add(plotter.NewGrid())
	p.Add(l)
	return nil
}

func rotateTicks(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
}

func (r *Renderer) save(p *plot.Plot, name, suffix string) (string, error) {
	if err := os.MkdirAll(r.outDir, 0755); err != nil {
		return "", errors.RenderError(suffix, err)
	}
	path := filepath.Join(r.outDir, fmt.Sprintf("%s_%s.png", name, suffix))
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return "", errors.RenderError(suffix, err)
	}
	return path, nil
}
