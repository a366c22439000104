// Package logging builds the zap logger shared by cmd/ and driver,
// the way codeNERD's root command wires up a process-wide *zap.Logger
// from a verbosity flag rather than letting each package configure its
// own.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production-profile zap logger, dropped to debug level
// when verbose is set. Debug level is where spec.md §7 places
// key-overflow skips and dictionary-load timing.
func New(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// NewNop is used by tests that need a *zap.Logger but don't want
// output on the test runner's stderr.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
