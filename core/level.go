package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned when a level name cannot be parsed.
var ErrUnknownLevel = errors.New("unknown level")

// Level represents the severity level of a log record
type Level int8

const (
	// ErrorLevel for error messages
	ErrorLevel Level = iota + 1
	// WarnLevel for warning messages
	WarnLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
	// TraceLevel for very low priority, often extremely verbose, information
	TraceLevel
)

// Levels returns every level, most severe first.
func Levels() []Level {
	return []Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= ErrorLevel && l <= TraceLevel
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// LevelFilter is an inclusive minimum-severity threshold.
type LevelFilter int8

const (
	// Off disables every level
	Off LevelFilter = iota
	ErrorFilter
	WarnFilter
	InfoFilter
	DebugFilter
	TraceFilter
)

// FilterFor returns the filter that lets l and every more severe level through.
func FilterFor(l Level) LevelFilter {
	return LevelFilter(l)
}

// Enabled reports whether records at level l pass the filter.
func (f LevelFilter) Enabled(l Level) bool {
	return l.Valid() && int8(l) <= int8(f)
}

// Level returns the least severe level the filter lets through.
// The second result is false for Off.
func (f LevelFilter) Level() (Level, bool) {
	if f <= Off {
		return 0, false
	}
	if f > TraceFilter {
		return TraceLevel, true
	}
	return Level(f), true
}

// String returns the string representation of the filter
func (f LevelFilter) String() string {
	if f <= Off {
		return "OFF"
	}
	l, _ := f.Level()
	return l.String()
}

// ParseLevel converts a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return ErrorLevel, nil
	case "warn":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// ParseLevelFilter converts a case-insensitive level name, or "off", to a LevelFilter.
func ParseLevelFilter(s string) (LevelFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), "off") {
		return Off, nil
	}
	l, err := ParseLevel(s)
	if err != nil {
		return Off, err
	}
	return FilterFor(l), nil
}
