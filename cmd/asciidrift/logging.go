//go:build !js
// +build !js

package main

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger builds a file-target debug logger. The terminal owns stdout and
// stderr while the effect runs, so logs can only go to a file; with no path
// given, logging is a no-op.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}
