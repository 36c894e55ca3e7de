// Package logging provides the process-wide structured logger for
// benchview.
//
// It wraps [log/slog] behind a single global instance so that log level,
// format and destination are controlled from one place. Call Init (or
// InitDefault) once at startup and retrieve the logger with GetLogger, or
// use the package-level Debug/Info/Warn/Error helpers. GetLogger falls
// back to a default stderr logger when Init was never called.
package logging
