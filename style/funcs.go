package style

import (
	"io"

	"github.com/Philipp01105/colog/core"
)

// Funcs is a Style assembled from individual functions. Any nil field
// falls back to the matching Default function, called with the Funcs
// value itself as the active style.
type Funcs struct {
	ColorFunc     func(level core.Level, text string) string
	TokenFunc     func(level core.Level) string
	PrefixFunc    func(s Style, level core.Level) string
	SeparatorFunc func() string
	FormatFunc    func(s Style, w io.Writer, rec *core.Record) error
}

var _ Style = Funcs{}

// LevelColor implements Style.
func (f Funcs) LevelColor(level core.Level, text string) string {
	if f.ColorFunc != nil {
		return f.ColorFunc(level, text)
	}
	return DefaultLevelColor(level, text)
}

// LevelToken implements Style.
func (f Funcs) LevelToken(level core.Level) string {
	if f.TokenFunc != nil {
		return f.TokenFunc(level)
	}
	return DefaultLevelToken(level)
}

// PrefixToken implements Style.
func (f Funcs) PrefixToken(level core.Level) string {
	if f.PrefixFunc != nil {
		return f.PrefixFunc(f, level)
	}
	return DefaultPrefixToken(f, level)
}

// LineSeparator implements Style.
func (f Funcs) LineSeparator() string {
	if f.SeparatorFunc != nil {
		return f.SeparatorFunc()
	}
	return DefaultLineSeparator()
}

// Format implements Style.
func (f Funcs) Format(w io.Writer, rec *core.Record) error {
	if f.FormatFunc != nil {
		return f.FormatFunc(f, w, rec)
	}
	return DefaultFormat(f, w, rec)
}
