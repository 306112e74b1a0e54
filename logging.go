package main

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger builds the production logger writing to the configured file.
// The terminal belongs to the UI, so without a log file nothing is logged.
func newLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	config := zap.NewProductionConfig()
	config.Level = level
	config.OutputPaths = []string{cfg.LogFile}
	config.ErrorOutputPaths = []string{cfg.LogFile}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
