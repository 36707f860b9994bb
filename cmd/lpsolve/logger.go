package main

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
)

// newLogger builds a zap logger behind the logr interface. "debug" enables
// the V(1) traces of the solver and the HTTP server.
func newLogger(level, format string) (logr.Logger, func(), error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("%w: log-level: %w", errInvalidConfig, err)
	}

	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), func() {}, err
	}

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}
