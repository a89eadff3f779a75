// Package handler provides the Handler interface and the adapters that
// connect colog styles to log front-ends and sinks.
//
// Handlers work synchronously: each Handle call formats one record and
// writes it to the sink before returning. A failed write is reported to
// the caller unchanged; the handler neither retries nor buffers.
//
// Built-in types:
//
//   - ConsoleHandler formats records with a formatter.Formatter and
//     writes them to any io.Writer (default: os.Stderr), one Write per
//     record.
//   - SlogHandler adapts a Handler to log/slog.Handler, so a colog style
//     can render the standard library's structured logger.
//   - ZapCore adapts a Handler to zapcore.Core, so zap loggers can render
//     through a colog style.
//
// Both adapters consult a filter.Filter before building a record, with
// the logger name as the filter target.
//
// ConsoleHandler tracks processed and failed writes via the Stats type,
// which can be queried at runtime.
package handler
