// Package logging provides structured logging utilities shared by the
// foundry-forcecpu tools.
//
// # Overview
//
// This package wraps the standard library slog package with defaults and
// conventions for consistent logging across the wrapper and diagnostics
// binaries: JSON records on stderr, environment-based level configuration,
// and module/version context on every record. Child process output is
// relayed on stdout/stderr verbatim; log records never interleave with it
// on stdout.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location,
//     including sanitizer trace output
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("foundry-forcecpu", version)
//
//	    slog.Info("starting", "bin", bin)
//	    slog.Debug("sanitize: extracted version run", "value", v)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cudaver", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug foundry-forcecpu model ls
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "msg": "sanitize: extracted version run",
//	    "module": "cudaver",
//	    "version": "v1.0.0",
//	    "raw": "12.0\n",
//	    "value": "12.0"
//	}
package logging
