// Package testkit provides fixtures and helpers shared by tests.
package testkit

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// WriteVoltageCSV writes a synthetic two-column voltage capture (a noisy-ish
// sine around 3.7V) into dir and returns its path.
func WriteVoltageCSV(t testing.TB, dir string, rows int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("Time (s),Pack Voltage\n")
	for i := 0; i < rows; i++ {
		ts := float64(i) * 0.1
		v := 3.7 + 0.5*math.Sin(ts*2) + 0.05*math.Sin(ts*37)
		fmt.Fprintf(&b, "%.3f,%.5f\n", ts, v)
	}

	path := filepath.Join(dir, "Pack_Volt_Data.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write fixture CSV: %v", err)
	}
	return path
}

// WriteWideCSV writes a fixture with a third column, for the column-count
// warning path.
func WriteWideCSV(t testing.TB, dir string, rows int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("Time (s),Current,Flag\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&b, "%d,%.3f,ok\n", i, 1.2+0.1*float64(i%7))
	}

	path := filepath.Join(dir, "Current_Data.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write fixture CSV: %v", err)
	}
	return path
}
