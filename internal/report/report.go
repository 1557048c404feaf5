// Package report writes a Markdown summary of an analysis run, plus an HTML
// rendering of it, next to the chart images.
package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"seriestat/domain/core"
	"seriestat/domain/series"
	"seriestat/internal/errors"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Timing records how long one step of the run took
type Timing struct {
	Name    string
	Elapsed time.Duration
}

// Data is everything the report includes about one run
type Data struct {
	RunID       core.RunID
	Fingerprint core.Fingerprint
	Series      *series.Series
	Summary     series.Summary
	Bins        series.Bins
	Charts      []string
	Timings     []Timing
}

// Write renders the Markdown and HTML reports into dir and returns both paths
func Write(dir string, data Data) (string, string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", errors.Wrap(err, "failed to create report directory")
	}

	md := render(data)

	mdPath := filepath.Join(dir, data.Series.Name+"_report.md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return "", "", errors.Wrap(err, "failed to write markdown report")
	}

	htmlPath := filepath.Join(dir, data.Series.Name+"_report.html")
	if err := os.WriteFile(htmlPath, toHTML(md), 0644); err != nil {
		return "", "", errors.Wrap(err, "failed to write html report")
	}

	return mdPath, htmlPath, nil
}

func render(data Data) string {
	var b strings.Builder
	s := data.Series

	fmt.Fprintf(&b, "# Analysis Report: %s\n\n", s.Name)
	fmt.Fprintf(&b, "- Run ID: `%s`\n", data.RunID)
	fmt.Fprintf(&b, "- Fingerprint: `%s`\n", data.Fingerprint)
	fmt.Fprintf(&b, "- Source: `%s`\n", s.Source)
	fmt.Fprintf(&b, "- Columns: %s - %s\n", s.XTitle, s.YTitle)
	fmt.Fprintf(&b, "- Unit: %s\n\n", s.Unit())

	b.WriteString("## Summary Statistics\n\n")
	b.WriteString("| Statistic | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Rows | %d |\n", data.Summary.Rows)
	fmt.Fprintf(&b, "| Min | %g |\n", data.Summary.Min)
	fmt.Fprintf(&b, "| Max | %g |\n", data.Summary.Max)
	fmt.Fprintf(&b, "| Mean | %g |\n", data.Summary.Mean)
	fmt.Fprintf(&b, "| Median | %g |\n", data.Summary.Median)
	fmt.Fprintf(&b, "| Mode | %s |\n\n", modeCell(data.Summary.Mode))

	fmt.Fprintf(&b, "## Bins (width %g)\n\n", data.Bins.Width)
	b.WriteString("| # | Edge |\n|---|---|\n")
	for i, edge := range data.Bins.Edges {
		fmt.Fprintf(&b, "| %d | %g |\n", i, edge)
	}
	b.WriteString("\n")

	if len(data.Charts) > 0 {
		b.WriteString("## Charts\n\n")
		for _, chart := range data.Charts {
			name := filepath.Base(chart)
			fmt.Fprintf(&b, "![%s](%s)\n\n", name, name)
		}
	}

	if len(data.Timings) > 0 {
		b.WriteString("## Timings\n\n")
		b.WriteString("| Step | Elapsed |\n|---|---|\n")
		for _, timing := range data.Timings {
			fmt.Fprintf(&b, "| %s | %.4fs |\n", timing.Name, timing.Elapsed.Seconds())
		}
		b.WriteString("\n")
	}

	return b.String()
}

func modeCell(mode float64) string {
	if math.IsNaN(mode) {
		return "n/a (all values unique)"
	}
	return fmt.Sprintf("%g", mode)
}

func toHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML([]byte(md), p, renderer)
}
