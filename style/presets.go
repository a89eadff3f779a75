package style

import (
	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/paint"
)

// ThreeLetterToken returns ERR, WRN, INF, DBG or TRC.
func ThreeLetterToken(level core.Level) string {
	switch level {
	case core.ErrorLevel:
		return "ERR"
	case core.WarnLevel:
		return "WRN"
	case core.InfoLevel:
		return "INF"
	case core.DebugLevel:
		return "DBG"
	case core.TraceLevel:
		return "TRC"
	default:
		return "???"
	}
}

// BackgroundLevelColor renders text bright white on the color of level.
func BackgroundLevelColor(level core.Level, text string) string {
	var c paint.Color
	switch level {
	case core.ErrorLevel:
		c = paint.Red
	case core.WarnLevel:
		c = paint.Yellow
	case core.InfoLevel:
		c = paint.Green
	case core.DebugLevel:
		c = paint.Blue
	case core.TraceLevel:
		c = paint.Magenta
	default:
		return text
	}
	p := paint.Profile()
	return paint.Background(text, c).Foreground(p.Color(string(paint.BrightWhite))).String()
}

// ArrowPrefixToken renders the prefix as "| TOKEN -->".
func ArrowPrefixToken(s Style, level core.Level) string {
	return paint.Foreground("| ", accent).Bold().String() +
		s.LevelColor(level, s.LevelToken(level)) +
		paint.Foreground(" -->", accent).Bold().String()
}

// PlainLineSeparator returns a bare newline, leaving continuation lines unmarked.
func PlainLineSeparator() string {
	return "\n"
}
