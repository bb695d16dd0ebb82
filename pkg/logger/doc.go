// Package logger builds configured log/slog loggers for the sessionkit
// services and libraries.
//
// A single factory function, New, assembles a slog.Logger from functional
// options: level, output format (json or text), destination writer, static
// attributes and per-environment presets. Handlers are wrapped with a
// decorator that can inject request-scoped attributes extracted from the
// context at log time.
//
//	log := logger.New(
//		logger.WithProduction("edge"),
//		logger.WithAttr(slog.String("version", version)),
//	)
//
// The Error attribute helper keeps the "error" log key consistent across
// the codebase.
package logger
