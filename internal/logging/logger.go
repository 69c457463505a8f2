// ABOUTME: Logger construction for NavPilot components
// ABOUTME: Builds a zap logger in production or verbose development mode
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process-wide logger. Verbose switches to the
// development encoder with debug level enabled; otherwise production
// JSON at info level. Callers own Sync on shutdown.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	return config.Build()
}
