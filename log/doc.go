// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// A package-level default logger writes to standard error and is
// reconfigured by the CLI from the --log-* flag group via [Config].
// Pretty printing (the default) colorizes output with lipgloss styles;
// disable it with [WithPretty] for machine-readable JSON or logfmt-style
// text.
package log
