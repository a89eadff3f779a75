package style_test

import (
	"os"

	"github.com/muesli/termenv"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/paint"
	"github.com/Philipp01105/colog/style"
)

func ExampleDefault() {
	paint.SetProfile(termenv.Ascii)

	s := style.Default{}
	_ = s.Format(os.Stdout, &core.Record{Level: core.ErrorLevel, Message: "error message"})
	_ = s.Format(os.Stdout, &core.Record{Level: core.InfoLevel, Message: "multi line demonstration\nhere"})
	// Output:
	// [E] error message
	// [*] multi line demonstration
	//  | here
}

// Override only the token; colors, brackets and the separator keep their defaults.
func ExampleFuncs() {
	paint.SetProfile(termenv.Ascii)

	s := style.Funcs{TokenFunc: style.ThreeLetterToken}
	for _, l := range core.Levels() {
		_ = s.Format(os.Stdout, &core.Record{Level: l, Message: l.String() + " message"})
	}
	// Output:
	// [ERR] ERROR message
	// [WRN] WARN message
	// [INF] INFO message
	// [DBG] DEBUG message
	// [TRC] TRACE message
}

func ExampleNewSequenced() {
	paint.SetProfile(termenv.Ascii)

	s := style.NewSequenced(nil)
	_ = s.Format(os.Stdout, &core.Record{Level: core.InfoLevel, Message: "info1 message"})
	_ = s.Format(os.Stdout, &core.Record{Level: core.InfoLevel, Message: "info2 message"})
	// Output:
	// [Log event    1] [INF] info1 message
	// [Log event    2] [INF] info2 message
}
