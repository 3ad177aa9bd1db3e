// Package logging constructs the slog loggers used across the CLI.
//
// Output goes to stderr in a compact console format by default, with an
// optional JSON format for scripted use. Helper constructors provide no-op
// and component-scoped loggers so library packages never have to guard
// against a nil *slog.Logger.
package logging
