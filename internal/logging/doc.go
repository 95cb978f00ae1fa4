// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON lines for machine parsing
//   - Development: colored console output (enabled by --verbose)
//
// Loggers write to stderr by default. The console programs own stdout and
// the transcript file, and log lines must never end up in either.
//
//	logger := logging.NewDefault()
//	logger.Warn("input clamped", zap.String("param", "x"), zap.Float64("value", v))
package logging
