package config

import (
	"os"
	"strconv"

	"seriestat/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Output   OutputConfig
	Analysis AnalysisConfig
}

// OutputConfig holds file output settings
type OutputConfig struct {
	Dir     string // directory chart images and reports are written to
	LogFile string // plain-text run log, truncated per run
	Report  bool   // also write a Markdown/HTML run report
	Show    bool   // open rendered charts with the platform viewer
}

// AnalysisConfig holds the numeric knobs of the analysis
type AnalysisConfig struct {
	BinCount      int // number of equal-width histogram bins
	WindowDivisor int // RMS window = rows / WindowDivisor
	HeadRows      int // rows included in the log header dump
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Output: OutputConfig{
			Dir:     getEnvOrDefault("SERIESTAT_OUT_DIR", "results"),
			LogFile: getEnvOrDefault("SERIESTAT_LOG_FILE", "seriestat.log"),
			Report:  getEnvBoolOrDefault("SERIESTAT_REPORT", true),
			Show:    getEnvBoolOrDefault("SERIESTAT_SHOW", false),
		},
		Analysis: AnalysisConfig{
			BinCount:      getEnvIntOrDefault("SERIESTAT_BIN_COUNT", 10),
			WindowDivisor: getEnvIntOrDefault("SERIESTAT_WINDOW_DIVISOR", 30),
			HeadRows:      getEnvIntOrDefault("SERIESTAT_HEAD_ROWS", 10),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Output.Dir == "" {
		return errors.ConfigInvalid("output directory is required")
	}
	if config.Output.LogFile == "" {
		return errors.ConfigInvalid("log file path is required")
	}
	if config.Analysis.BinCount < 1 {
		return errors.ConfigInvalid("bin count must be at least 1")
	}
	if config.Analysis.WindowDivisor < 1 {
		return errors.ConfigInvalid("window divisor must be at least 1")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
