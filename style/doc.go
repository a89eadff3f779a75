// Package style turns a log record into a colored, human-readable line.
//
// A Style bundles five operations: LevelColor maps a level and some text
// to colored text, LevelToken maps a level to a short token, PrefixToken
// builds the bracketed prefix from those two, LineSeparator supplies the
// string that re-indents continuation lines, and Format ties it all
// together into "<prefix> <message>\n".
//
// Every operation has a default implementation as a free function that
// takes the active Style, so defaults always call back through the style
// being used. Overriding LevelToken alone therefore changes the prefix
// without touching PrefixToken or Format:
//
//	s := style.Funcs{TokenFunc: style.ThreeLetterToken}
//	s.Format(os.Stderr, &core.Record{Level: core.WarnLevel, Message: "disk 91% full"})
//	// [WRN] disk 91% full
//
// Funcs leaves any nil field at its default. Types that need more than
// function overrides, for example to carry state, implement Style
// directly and call the Default functions with themselves as receiver.
// Sequenced is such a style: it numbers every record it formats.
//
// With the default style a multi-line message keeps its continuation
// lines attached to the prefix:
//
//	[*] multi line demonstration
//	 | here
package style
