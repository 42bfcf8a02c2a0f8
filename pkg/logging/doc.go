// Package logging provides structured logging utilities shared by the
// semver CLI components.
//
// # Overview
//
// This package wraps the standard library slog package with project
// defaults: JSON output to stderr, module/version context on every record,
// environment-based level configuration, and source location tracking for
// debug logs. Logs go to stderr so they never interleave with the
// classification words the compare tool writes to stdout.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: detailed diagnostic information with source location
//   - INFO: general informational messages (default)
//   - WARN/WARNING: potentially problematic situations
//   - ERROR: failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("semver", version)
//	    slog.Info("starting", "args", os.Args)
//	}
//
// Setting an explicit level (e.g., from a --log-level flag):
//
//	logging.SetDefaultStructuredLoggerWithLevel("semver", version, "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is supplied:
//
//	LOG_LEVEL=debug semver versions.txt
//
// If LOG_LEVEL is not set, defaults to INFO level.
package logging
