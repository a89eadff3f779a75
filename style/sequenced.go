package style

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/paint"
)

// Sequenced numbers every record it formats. The counter is incremented
// once per Format call, before the line is built, and the line is built
// from that value alone, so concurrent callers each see their own number.
type Sequenced struct {
	base  Style
	count atomic.Uint64
}

// NewSequenced returns a Sequenced style delegating colors, tokens,
// prefix and separator to base. A nil base uses three-letter tokens.
func NewSequenced(base Style) *Sequenced {
	if base == nil {
		base = Funcs{TokenFunc: ThreeLetterToken}
	}
	return &Sequenced{base: base}
}

// Count returns the number of records formatted so far.
func (s *Sequenced) Count() uint64 {
	return s.count.Load()
}

// LevelColor implements Style.
func (s *Sequenced) LevelColor(level core.Level, text string) string {
	return s.base.LevelColor(level, text)
}

// LevelToken implements Style.
func (s *Sequenced) LevelToken(level core.Level) string {
	return s.base.LevelToken(level)
}

// PrefixToken implements Style using the current count.
func (s *Sequenced) PrefixToken(level core.Level) string {
	return s.prefix(s.count.Load(), level)
}

// LineSeparator implements Style.
func (s *Sequenced) LineSeparator() string {
	return s.base.LineSeparator()
}

// Format implements Style.
func (s *Sequenced) Format(w io.Writer, rec *core.Record) error {
	n := s.count.Add(1)
	return DefaultFormat(sequencedCall{s: s, n: n}, w, rec)
}

func (s *Sequenced) prefix(n uint64, level core.Level) string {
	p := paint.Profile()
	label := paint.Background(fmt.Sprintf("[Log event %4d]", n), paint.Blue).
		Foreground(p.Color(string(paint.BrightWhite))).
		String()
	return label + " " + s.base.PrefixToken(level)
}

// sequencedCall pins the counter value of one Format call.
type sequencedCall struct {
	s *Sequenced
	n uint64
}

func (c sequencedCall) LevelColor(level core.Level, text string) string {
	return c.s.base.LevelColor(level, text)
}

func (c sequencedCall) LevelToken(level core.Level) string {
	return c.s.base.LevelToken(level)
}

func (c sequencedCall) PrefixToken(level core.Level) string {
	return c.s.prefix(c.n, level)
}

func (c sequencedCall) LineSeparator() string {
	return c.s.base.LineSeparator()
}

func (c sequencedCall) Format(w io.Writer, rec *core.Record) error {
	return DefaultFormat(c, w, rec)
}
