// Package logging assembles the structured slog loggers used by simctl.
//
// It owns the console/JSON handler choice, level parsing and terminal
// detection for the "auto" format, and provides a no-op logger for tests and
// wiring code that cannot fail. The similarity packages themselves never log.
package logging
