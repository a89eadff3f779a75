// Package paint wraps termenv to color text for the styles in colog.
//
// All painting goes through a single process-wide color profile. It is
// detected from os.Stderr when the package loads, which honors NO_COLOR,
// CLICOLOR_FORCE and whether stderr is a terminal. Under the Ascii
// profile every helper returns its input unchanged, so styled output
// degrades to plain text when written to a pipe or file.
//
//	s := paint.Foreground("E", paint.Red).Bold().String()
//
// Strip removes the escape sequences again, which is what tests use to
// compare styled output against plain expectations.
package paint
