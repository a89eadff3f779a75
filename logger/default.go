package logger

import (
	"errors"
	"sync"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/filter"
)

// ErrInitialized is returned when the default logger is initialized twice.
var ErrInitialized = errors.New("default logger already initialized")

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
	initialized   bool
)

func init() {
	defaultLogger = NewBuilder().WithLevel(core.InfoFilter).Build()
}

// BasicBuilder returns a builder using the default style on stderr with
// no directives, which lets only Error records through.
func BasicBuilder() *Builder {
	return NewBuilder()
}

// DefaultBuilder returns a builder using the default style on stderr that
// lets Info and more severe records through, with the directives of the
// GO_LOG environment variable applied on top.
func DefaultBuilder() *Builder {
	return NewBuilder().
		WithLevel(core.InfoFilter).
		ParseEnv(filter.DefaultEnv)
}

// Init installs DefaultBuilder().Build() as the default logger.
// See InitWith.
func Init() error {
	return InitWith(DefaultBuilder())
}

// InitWith builds b and installs it as the default logger. It can only
// succeed once per process; later calls return ErrInitialized and leave
// the installed logger untouched. Filter parse errors collected by b are
// returned, but the logger is installed regardless.
func InitWith(b *Builder) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if initialized {
		return ErrInitialized
	}
	defaultLogger = b.Build()
	initialized = true
	return b.Err()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Package-level convenience functions using the default logger

// Error logs an error message using the default logger
func Error(msg string) {
	Default().Error(msg)
}

// Warn logs a warning message using the default logger
func Warn(msg string) {
	Default().Warn(msg)
}

// Info logs an info message using the default logger
func Info(msg string) {
	Default().Info(msg)
}

// Debug logs a debug message using the default logger
func Debug(msg string) {
	Default().Debug(msg)
}

// Trace logs a trace message using the default logger
func Trace(msg string) {
	Default().Trace(msg)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().Errorf(format, args...)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...interface{}) {
	Default().Warnf(format, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().Infof(format, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().Debugf(format, args...)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	Default().Tracef(format, args...)
}

// Named creates a child of the default logger
func Named(name string) *Logger {
	return Default().Named(name)
}
