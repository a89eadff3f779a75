package style

import (
	"io"
	"strings"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/paint"
)

// Style defines how a record is rendered.
type Style interface {
	// LevelColor colors text according to level.
	LevelColor(level core.Level, text string) string
	// LevelToken returns the short token displayed for level.
	LevelToken(level core.Level) string
	// PrefixToken returns the prefix written before every message.
	PrefixToken(level core.Level) string
	// LineSeparator returns the string substituted for newlines in messages.
	LineSeparator() string
	// Format writes the styled record to w.
	Format(w io.Writer, rec *core.Record) error
}

// accent is the color of the prefix brackets.
const accent = paint.Blue

// DefaultLevelColor renders text bold in the color of level.
func DefaultLevelColor(level core.Level, text string) string {
	var c paint.Color
	switch level {
	case core.ErrorLevel:
		c = paint.Red
	case core.WarnLevel:
		c = paint.Yellow
	case core.InfoLevel, core.DebugLevel:
		c = paint.Green
	case core.TraceLevel:
		c = paint.Magenta
	default:
		return text
	}
	return paint.Foreground(text, c).Bold().String()
}

// DefaultLevelToken returns E, W, *, D or T.
func DefaultLevelToken(level core.Level) string {
	switch level {
	case core.ErrorLevel:
		return "E"
	case core.WarnLevel:
		return "W"
	case core.InfoLevel:
		return "*"
	case core.DebugLevel:
		return "D"
	case core.TraceLevel:
		return "T"
	default:
		return "?"
	}
}

// DefaultPrefixToken wraps the colored token of s in accented brackets.
func DefaultPrefixToken(s Style, level core.Level) string {
	return paint.Foreground("[", accent).Bold().String() +
		s.LevelColor(level, s.LevelToken(level)) +
		paint.Foreground("]", accent).Bold().String()
}

// DefaultLineSeparator returns a newline followed by a bold " |" marker.
func DefaultLineSeparator() string {
	return "\n" + paint.Foreground(" |", paint.White).Bold().String() + " "
}

// DefaultFormat writes the prefix of s, a space, the message with every
// newline replaced by the separator of s, and a trailing newline.
// The line reaches w in a single Write call and the only error returned
// is the one from w.
func DefaultFormat(s Style, w io.Writer, rec *core.Record) error {
	prefix := s.PrefixToken(rec.Level)
	msg := strings.ReplaceAll(rec.Message, "\n", s.LineSeparator())

	var b strings.Builder
	b.Grow(len(prefix) + len(msg) + 2)
	b.WriteString(prefix)
	b.WriteByte(' ')
	b.WriteString(msg)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

// Default is the built-in style.
type Default struct{}

// LevelColor implements Style.
func (Default) LevelColor(level core.Level, text string) string {
	return DefaultLevelColor(level, text)
}

// LevelToken implements Style.
func (Default) LevelToken(level core.Level) string {
	return DefaultLevelToken(level)
}

// PrefixToken implements Style.
func (d Default) PrefixToken(level core.Level) string {
	return DefaultPrefixToken(d, level)
}

// LineSeparator implements Style.
func (Default) LineSeparator() string {
	return DefaultLineSeparator()
}

// Format implements Style.
func (d Default) Format(w io.Writer, rec *core.Record) error {
	return DefaultFormat(d, w, rec)
}

// Sprint formats a record for level and msg with s and returns the line.
func Sprint(s Style, level core.Level, msg string) string {
	var b strings.Builder
	// strings.Builder never fails to write
	_ = s.Format(&b, &core.Record{Level: level, Message: msg})
	return b.String()
}
