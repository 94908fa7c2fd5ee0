// Package logging builds the slog loggers used across the tracker. It keeps
// the repository conventions in one place: a console handler for interactive
// use, a JSON handler for log files, component-scoped child loggers, and a
// no-op logger for tests.
package logging
