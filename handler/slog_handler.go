package handler

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/filter"
)

// LevelTrace is the slog level mapped to core.TraceLevel.
const LevelTrace = slog.Level(-8)

// SlogHandler is an adapter that implements slog.Handler using a colog Handler.
// Attributes are appended to the message as key=value pairs.
type SlogHandler struct {
	handler Handler
	filter  *filter.Filter
	target  string
	attrs   string // pre-rendered " key=value" pairs
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
// Records are filtered with f using target as the filter target.
func NewSlogHandler(h Handler, f *filter.Filter, target string) *SlogHandler {
	return &SlogHandler{
		handler: h,
		filter:  f,
		target:  target,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.filter.Enabled(s.target, slogLevelToCore(level))
}

// Handle converts a slog.Record to a core.Record and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)

	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	return s.handler.Handle(&core.Record{
		Level:   slogLevelToCore(record.Level),
		Target:  s.target,
		Message: b.String(),
	})
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	clone := *s
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	clone := *s
	if s.group != "" {
		clone.group = s.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders a slog.Attr, prepending the group prefix if present.
// Group attrs are flattened into dot-separated keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}
	appendPair(b, key, a.Value.String())
}
