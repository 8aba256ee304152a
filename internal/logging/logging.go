// Package logging builds the zap loggers shared by the server, the serverless
// entry points and the command line tools.
package logging

import (
	"fmt"

	"github.com/smallie-ng/smallie-web/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a logger at the given level. Development loggers use the console
// encoder; everything else logs JSON for the hosting platform's log drain.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Must is like New but falls back to a no-op logger, for entry points that
// have nowhere to report a logger failure.
func Must(level string, development bool) *zap.Logger {
	logger, err := New(level, development)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// FromEnv builds the logger for the serverless entry points, which start
// before configuration is loaded. LOG_LEVEL sets the level and
// LOG_DEVELOPMENT switches to the console encoder.
func FromEnv() *zap.Logger {
	return Must(config.GetEnv("LOG_LEVEL", "info"), config.GetEnvAsBool("LOG_DEVELOPMENT", false))
}
