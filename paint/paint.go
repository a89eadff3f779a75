package paint

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Color is one of the 16 basic ANSI colors.
type Color string

const (
	Black         Color = "0"
	Red           Color = "1"
	Green         Color = "2"
	Yellow        Color = "3"
	Blue          Color = "4"
	Magenta       Color = "5"
	Cyan          Color = "6"
	White         Color = "7"
	BrightBlack   Color = "8"
	BrightRed     Color = "9"
	BrightGreen   Color = "10"
	BrightYellow  Color = "11"
	BrightBlue    Color = "12"
	BrightMagenta Color = "13"
	BrightCyan    Color = "14"
	BrightWhite   Color = "15"
)

var profile atomic.Int32

func init() {
	SetProfile(Detect(os.Stderr))
}

// Detect returns the color profile appropriate for w.
func Detect(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// SetProfile sets the process-wide color profile.
func SetProfile(p termenv.Profile) {
	profile.Store(int32(p))
}

// Profile returns the process-wide color profile.
func Profile() termenv.Profile {
	return termenv.Profile(profile.Load())
}

// Enabled reports whether painting emits escape sequences.
func Enabled() bool {
	return Profile() != termenv.Ascii
}

// String returns an undecorated style for s bound to the active profile.
func String(s string) termenv.Style {
	return Profile().String(s)
}

// Foreground returns a style rendering s in color c.
func Foreground(s string, c Color) termenv.Style {
	p := Profile()
	return p.String(s).Foreground(p.Color(string(c)))
}

// Background returns a style rendering s on a background of color c.
func Background(s string, c Color) termenv.Style {
	p := Profile()
	return p.String(s).Background(p.Color(string(c)))
}

// Bold returns s in bold.
func Bold(s string) string {
	return String(s).Bold().String()
}

// Strip removes all escape sequences from s.
func Strip(s string) string {
	return ansi.Strip(s)
}
