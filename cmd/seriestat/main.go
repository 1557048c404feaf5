package main

import (
	"fmt"
	"os"
	"strings"

	"seriestat/adapters/charts"
	"seriestat/adapters/ingest"
	"seriestat/app"
	"seriestat/internal/config"
	"seriestat/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Optional .env for SERIESTAT_* settings; flags still win.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "seriestat",
		Short: "Descriptive statistics and charts for two-column time-series files",
	}

	rootCmd.AddCommand(newAnalyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var outDir string
	var logFile string
	var chartList []string
	var binCount int
	var windowDivisor int
	var show bool
	var report bool

	cmd := &cobra.Command{
		Use:   "analyze [data-file]",
		Short: "Compute statistics and render charts for a CSV or XLSX capture",
		Long: `Load a two-column time-series file, log its descriptive statistics
(mean, median, mode, min/max, ten-bin edges) and render the selected charts
as PNG files.

Charts: histogram, raw, diff, rms (default: all four).

Example: seriestat analyze Pack_Volt_Data.csv --out-dir results --show`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags override environment settings.
			if cmd.Flags().Changed("out-dir") {
				cfg.Output.Dir = outDir
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Output.LogFile = logFile
			}
			if cmd.Flags().Changed("bins") {
				cfg.Analysis.BinCount = binCount
			}
			if cmd.Flags().Changed("window-divisor") {
				cfg.Analysis.WindowDivisor = windowDivisor
			}
			if cmd.Flags().Changed("show") {
				cfg.Output.Show = show
			}
			if cmd.Flags().Changed("report") {
				cfg.Output.Report = report
			}

			return runAnalyze(cfg, args[0], chartList)
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "results", "Directory chart images are written to")
	cmd.Flags().StringVar(&logFile, "log-file", "seriestat.log", "Plain-text run log path")
	cmd.Flags().StringSliceVar(&chartList, "charts", nil, "Charts to render: histogram,raw,diff,rms (default all)")
	cmd.Flags().IntVar(&binCount, "bins", 10, "Number of equal-width histogram bins")
	cmd.Flags().IntVar(&windowDivisor, "window-divisor", 30, "RMS window = rows / divisor")
	cmd.Flags().BoolVar(&show, "show", false, "Open rendered charts with the system image viewer")
	cmd.Flags().BoolVar(&report, "report", true, "Write Markdown and HTML run reports")

	return cmd
}

func runAnalyze(cfg *config.Config, dataFile string, chartList []string) error {
	logger, closer, err := logging.Open(cfg.Output.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	svc, err := app.NewAnalysisService(cfg, logger,
		ingest.NewDataReader(dataFile),
		charts.NewRenderer(cfg.Output.Dir))
	if err != nil {
		return err
	}

	sum := svc.Summary()
	fmt.Printf("Loaded %s: %d rows (%s - %s)\n",
		dataFile, sum.Rows, svc.Series().XTitle, svc.Series().YTitle)
	fmt.Printf("Min %g | Max %g | Mean %g | Median %g | Mode %g\n",
		sum.Min, sum.Max, sum.Mean, sum.Median, sum.Mode)

	paths, err := renderCharts(svc, chartList)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Printf("Wrote %s\n", path)
	}

	if cfg.Output.Report {
		mdPath, htmlPath, err := svc.WriteReport()
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", mdPath)
		fmt.Printf("Wrote %s\n", htmlPath)
	}

	if cfg.Output.Show {
		for _, path := range paths {
			if err := charts.Show(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
		}
	}

	return nil
}

func renderCharts(svc *app.AnalysisService, chartList []string) ([]string, error) {
	if len(chartList) == 0 {
		return svc.RunAll()
	}

	var paths []string
	for _, name := range chartList {
		var path string
		var err error
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "histogram":
			path, err = svc.Histogram()
		case "raw":
			path, err = svc.LineRaw()
		case "diff":
			path, err = svc.LineDiff()
		case "rms":
			path, err = svc.LineRMS()
		default:
			return nil, fmt.Errorf("unknown chart %q (expected histogram|raw|diff|rms)", name)
		}
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
