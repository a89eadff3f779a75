package paint

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Mode selects how the color profile is chosen.
type Mode int

const (
	// ModeUnset leaves the active profile alone
	ModeUnset Mode = iota
	// ModeAuto detects the profile from the output
	ModeAuto
	// ModeAlways forces ANSI colors
	ModeAlways
	// ModeNever disables colors
	ModeNever
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "unset"
	}
}

// ParseMode converts auto, always or never (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeUnset, fmt.Errorf("unknown color mode %q", s)
	}
}

// Apply sets the active profile according to m, detecting from w for ModeAuto.
func Apply(m Mode, w io.Writer) {
	switch m {
	case ModeAuto:
		SetProfile(Detect(w))
	case ModeAlways:
		SetProfile(termenv.ANSI)
	case ModeNever:
		SetProfile(termenv.Ascii)
	}
}
