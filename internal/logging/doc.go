// Package logging constructs the repository's slog loggers. Two output
// formats are supported: a compact console format for interactive use and
// JSON for machine consumption. Components tag their loggers with a
// "component" attribute which the console handler renders as a message
// prefix.
package logging
