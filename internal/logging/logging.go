// Package logging sets up the plain-text run log. The file is truncated on
// every run so each log holds exactly one analysis.
package logging

import (
	"io"
	"log/slog"
	"os"

	"seriestat/internal/errors"
)

// Open creates (or truncates) the log file at path and returns a text logger
// writing to it, plus a closer for the underlying file.
func Open(path string) (*slog.Logger, io.Closer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open log file %s", path)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	return logger, f, nil
}

// Banner writes the run-start banner at the top of the log
func Banner(log *slog.Logger) {
	log.Info("########################################################")
	log.Info("########                              ##################")
	log.Info("########        Running New File      ##################")
	log.Info("########                              ##################")
	log.Info("########################################################")
}

// Discard returns a logger that drops everything, for callers that do not
// want a log file
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
