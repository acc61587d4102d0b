// Package logging provides structured logging utilities for the semvergen command
// and the sampler.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("semvergen", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("sampler", "v1.0.0", "debug")
//	logger.Info("batch started", "kind", "version", "count", 100)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug semvergen sample --kind version
//	LOG_LEVEL=error semvergen check --kind version 1.2.3
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "batch completed",
//	    "module": "semvergen",
//	    "version": "v1.0.0",
//	    "count": 100
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "sample.(*Sampler).Run",
//	        "file": "sample.go",
//	        "line": 97
//	    },
//	    "msg": "sampling",
//	    "module": "semvergen",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("myapp", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("batch completed",
//	    "kind", "version-req",
//	    "count", 100,
//	    "overflow", 3,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("sampling", "seed", seed)  // Development/troubleshooting
//	slog.Info("batch completed")          // Normal operations
//	slog.Warn("values rejected")          // Potential issues
//	slog.Error("failed to write output")  // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to load profile",
//	    "error", err,
//	    "path", path,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/sample - batch sampling logging
//   - pkg/config - profile loading logging
//
// Generators never log.
package logging
