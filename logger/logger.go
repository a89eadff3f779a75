package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/filter"
	"github.com/Philipp01105/colog/handler"
	"github.com/Philipp01105/colog/paint"
	"github.com/Philipp01105/colog/style"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler handler.Handler
	filter  *filter.Filter
	target  string
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler handler.Handler
	writer  io.Writer
	style   style.Style
	filter  *filter.Filter
	target  string
	color   paint.Mode
	err     error
}

// NewBuilder creates a new logger builder. Without further setup the
// logger writes Error records to stderr with the default style.
func NewBuilder() *Builder {
	return &Builder{
		filter: filter.New(core.ErrorFilter),
	}
}

// WithHandler sets the handler. It takes precedence over WithWriter and WithStyle.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithWriter sets the sink of the console handler built by Build
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithStyle sets the style of the console handler built by Build
func (b *Builder) WithStyle(s style.Style) *Builder {
	b.style = s
	return b
}

// WithFilter replaces the filter, discarding previous levels and directives
func (b *Builder) WithFilter(f *filter.Filter) *Builder {
	if f == nil {
		f = filter.New(core.Off)
	}
	b.filter = f
	return b
}

// WithLevel sets the base level, keeping target directives
func (b *Builder) WithLevel(level core.LevelFilter) *Builder {
	b.filter = b.filter.WithBase(level)
	return b
}

// ParseFilters adds the directives of spec to the filter. Invalid
// directives are skipped and reported by Err.
func (b *Builder) ParseFilters(spec string) *Builder {
	f, err := b.filter.With(spec)
	b.filter = f
	b.err = multierr.Append(b.err, err)
	return b
}

// ParseEnv adds the directives found in the environment variable name, if set.
func (b *Builder) ParseEnv(name string) *Builder {
	if spec, ok := os.LookupEnv(name); ok {
		f, err := b.filter.With(spec)
		b.filter = f
		if err != nil {
			b.err = multierr.Append(b.err, fmt.Errorf("parse %s: %w", name, err))
		}
	}
	return b
}

// WithTarget sets the target of the built logger
func (b *Builder) WithTarget(target string) *Builder {
	b.target = target
	return b
}

// WithColor selects how the process-wide color profile is set by Build.
// ModeAuto detects it from the writer.
func (b *Builder) WithColor(mode paint.Mode) *Builder {
	b.color = mode
	return b
}

// Err returns the errors collected while parsing filter directives
func (b *Builder) Err() error {
	return b.err
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	w := b.writer
	if w == nil {
		w = os.Stderr
	}
	paint.Apply(b.color, w)

	h := b.handler
	if h == nil {
		h = handler.NewConsoleHandler(handler.ConsoleConfig{
			Writer: w,
			Style:  b.style,
		})
	}

	return &Logger{
		handler: h,
		filter:  b.filter,
		target:  b.target,
	}
}

// Named creates a child logger whose target is the dot-joined name
func (l *Logger) Named(name string) *Logger {
	if name == "" {
		return l
	}
	target := name
	if l.target != "" {
		target = l.target + "." + name
	}
	return &Logger{
		handler: l.handler,
		filter:  l.filter,
		target:  target,
	}
}

// Target returns the logger's filter target
func (l *Logger) Target() string {
	return l.target
}

// Enabled reports whether a record at level would be written
func (l *Logger) Enabled(level core.Level) bool {
	// Level check optimization - exit early BEFORE the target lookup
	if !l.filter.MaxLevel().Enabled(level) {
		return false
	}
	return l.filter.Enabled(l.target, level)
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.log(level, msg)
}

// log is the internal logging method, called after the level check
func (l *Logger) log(level core.Level, msg string) error {
	if l.handler == nil {
		return nil
	}
	return l.handler.Handle(&core.Record{
		Level:   level,
		Target:  l.target,
		Message: msg,
	})
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if l.Enabled(core.ErrorLevel) {
		_ = l.log(core.ErrorLevel, msg)
	}
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if l.Enabled(core.WarnLevel) {
		_ = l.log(core.WarnLevel, msg)
	}
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if l.Enabled(core.InfoLevel) {
		_ = l.log(core.InfoLevel, msg)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if l.Enabled(core.DebugLevel) {
		_ = l.log(core.DebugLevel, msg)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	if l.Enabled(core.TraceLevel) {
		_ = l.log(core.TraceLevel, msg)
	}
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.Enabled(core.ErrorLevel) {
		_ = l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
	}
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if l.Enabled(core.WarnLevel) {
		_ = l.log(core.WarnLevel, fmt.Sprintf(format, args...))
	}
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.Enabled(core.InfoLevel) {
		_ = l.log(core.InfoLevel, fmt.Sprintf(format, args...))
	}
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Enabled(core.DebugLevel) {
		_ = l.log(core.DebugLevel, fmt.Sprintf(format, args...))
	}
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if l.Enabled(core.TraceLevel) {
		_ = l.log(core.TraceLevel, fmt.Sprintf(format, args...))
	}
}

// Slog returns a *slog.Logger writing through the same handler and filter
func (l *Logger) Slog() *slog.Logger {
	return slog.New(handler.NewSlogHandler(l.handler, l.filter, l.target))
}

// Zap returns a *zap.Logger writing through the same handler and filter
func (l *Logger) Zap() *zap.Logger {
	z := zap.New(handler.NewZapCore(l.handler, l.filter))
	if l.target != "" {
		z = z.Named(l.target)
	}
	return z
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
