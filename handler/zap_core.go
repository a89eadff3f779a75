package handler

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/filter"
)

// ZapTraceLevel is the zap level mapped to core.TraceLevel.
const ZapTraceLevel = zapcore.DebugLevel - 1

// ZapCore is an adapter that implements zapcore.Core using a colog Handler.
// The zap logger name is used as the filter target and fields are
// appended to the message as key=value pairs sorted by key.
type ZapCore struct {
	handler Handler
	filter  *filter.Filter
	fields  string // pre-rendered context fields
}

var _ zapcore.Core = (*ZapCore)(nil)

// NewZapCore creates a new zapcore.Core adapter wrapping the given Handler.
func NewZapCore(h Handler, f *filter.Filter) *ZapCore {
	return &ZapCore{handler: h, filter: f}
}

// Enabled reports whether any target could accept records at lvl.
func (c *ZapCore) Enabled(lvl zapcore.Level) bool {
	return c.filter.MaxLevel().Enabled(zapLevelToCore(lvl))
}

// With returns a core that appends fields to every record.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	if len(fields) == 0 {
		return c
	}
	clone := *c
	clone.fields = c.fields + renderFields(fields)
	return &clone
}

// Check adds the core to ce when the filter accepts the entry's logger name and level.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.filter.Enabled(ent.LoggerName, zapLevelToCore(ent.Level)) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write formats the entry through the wrapped handler.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := ent.Message + c.fields
	if len(fields) > 0 {
		msg += renderFields(fields)
	}

	err := c.handler.Handle(&core.Record{
		Level:   zapLevelToCore(ent.Level),
		Target:  ent.LoggerName,
		Message: msg,
	})
	if ent.Level > zapcore.ErrorLevel {
		// The program may be about to panic or exit, flush what we have.
		_ = c.Sync()
	}
	return err
}

// Sync flushes the wrapped handler if it supports it.
func (c *ZapCore) Sync() error {
	if s, ok := c.handler.(Syncer); ok {
		return s.Sync()
	}
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl == zapcore.WarnLevel:
		return core.WarnLevel
	case lvl == zapcore.InfoLevel:
		return core.InfoLevel
	case lvl == zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// renderFields encodes fields into " key=value" pairs sorted by key.
func renderFields(fields []zapcore.Field) string {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		appendPair(&b, k, fmt.Sprint(enc.Fields[k]))
	}
	return b.String()
}
