// Package logging builds the application logger.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// Setup builds a zap logger for the given level (debug, info, warn or error).
// "debug" selects the development config; every other level uses the
// production config with its level adjusted. appName and appVersion are
// attached to every entry as initial fields.
//
// The logger is returned rather than installed globally; callers pass it down
// explicitly.
func Setup(level, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if level == "debug" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		parsed, err := zap.ParseAtomicLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		cfg.Level = parsed
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
