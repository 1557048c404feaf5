package series

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Series is the single in-memory table every operation works on: one
// independent column (usually time) and one dependent column, with the
// titles taken from the source header row.
type Series struct {
	Name   string // source file stem, used to name chart outputs
	Source string // full path to the source file

	XTitle string
	YTitle string
	X      []float64
	Y      []float64

	// ColumnCount is the raw column count from the header row. Anything
	// other than two is reported as a warning, not an error.
	ColumnCount int
}

// New creates a series from parallel columns
func New(name, xTitle, yTitle string, x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("column length mismatch: %d x values, %d y values", len(x), len(y))
	}
	return &Series{
		Name:        name,
		XTitle:      xTitle,
		YTitle:      yTitle,
		X:           x,
		Y:           y,
		ColumnCount: 2,
	}, nil
}

// Len returns the row count
func (s *Series) Len() int {
	return len(s.Y)
}

// Warnings reports shape problems that do not stop the run
func (s *Series) Warnings() []string {
	var warns []string
	if s.ColumnCount != 2 {
		warns = append(warns,
			"The supplied data has fewer or more than two columns.",
			"Please ensure your X and Y data are in the first and second columns.")
	}
	return warns
}

// Diff returns the first difference of the dependent column: d[i] = y[i+1] - y[i].
// The result has length n-1.
func (s *Series) Diff() []float64 {
	if len(s.Y) < 2 {
		return nil
	}
	d := make([]float64, len(s.Y)-1)
	for i := 0; i < len(s.Y)-1; i++ {
		d[i] = s.Y[i+1] - s.Y[i]
	}
	return d
}

// Unit infers the measurement unit from the source file name
func (s *Series) Unit() Unit {
	return InferUnit(s.Name)
}

// Head renders the first rows of the table for the log header dump
func (s *Series) Head(n int) string {
	if n > s.Len() {
		n = s.Len()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s,%s\n", s.XTitle, s.YTitle)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%g,%g\n", s.X[i], s.Y[i])
	}
	if n < s.Len() {
		fmt.Fprintf(&b, "... (%d rows)\n", s.Len())
	}
	return b.String()
}

// Stem strips directory and extension from a source path
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
