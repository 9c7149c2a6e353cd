// Package logging builds the zap loggers used across the generator. Verbosity
// is an explicit parameter rather than process-global state, so the core
// stays testable without capturing console output.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr. With verbose set, debug
// messages are included and log entries carry their caller.
func New(verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.DisableCaller = !verbose

	log, err := cfg.Build()
	if err != nil {
		// The development config cannot fail to build with these settings;
		// fall back to a no-op logger rather than panic in a CLI.
		return zap.NewNop().Sugar()
	}

	return log.Sugar()
}

// Nop returns a logger that discards everything. Used by tests and by library
// callers that pass no logger.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
