package formatter

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/paint"
	"github.com/Philipp01105/colog/style"
)

func asciiProfile(t *testing.T) {
	t.Helper()
	prev := paint.Profile()
	paint.SetProfile(termenv.Ascii)
	t.Cleanup(func() { paint.SetProfile(prev) })
}

func TestStyleFormatter_Basic(t *testing.T) {
	asciiProfile(t)
	f := NewStyleFormatter(nil)

	rec := &core.Record{Level: core.ErrorLevel, Message: "error message"}

	result, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := string(result); got != "[E] error message\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestStyleFormatter_CustomStyle(t *testing.T) {
	asciiProfile(t)
	f := NewStyleFormatter(style.Funcs{TokenFunc: style.ThreeLetterToken})

	var buf bytes.Buffer
	f.FormatRecord(&core.Record{Level: core.DebugLevel, Message: "a\nb"}, &buf)

	if got := buf.String(); got != "[DBG] a\n | b\n" {
		t.Errorf("FormatRecord() = %q", got)
	}
	if _, ok := f.Style().(style.Funcs); !ok {
		t.Errorf("Style() = %T, want style.Funcs", f.Style())
	}
}

func TestStyleFormatter_FormatReturnsCopy(t *testing.T) {
	asciiProfile(t)
	f := NewStyleFormatter(style.Default{})

	first, _ := f.Format(&core.Record{Level: core.InfoLevel, Message: "first"})
	_, _ = f.Format(&core.Record{Level: core.InfoLevel, Message: "second, and longer"})

	if string(first) != "[*] first\n" {
		t.Errorf("earlier result changed after pool reuse: %q", first)
	}
}

type chunkWriter struct {
	writes []string
	err    error
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, string(p))
	if w.err != nil {
		return 0, w.err
	}
	return len(p), nil
}

// pieceStyle writes its output in several pieces.
type pieceStyle struct{ style.Default }

func (p pieceStyle) Format(w io.Writer, rec *core.Record) error {
	for _, s := range []string{p.PrefixToken(rec.Level), " ", rec.Message, "\n"} {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func TestStyleFormatter_FormatToSingleWrite(t *testing.T) {
	asciiProfile(t)
	f := NewStyleFormatter(pieceStyle{})

	w := &chunkWriter{}
	if err := f.FormatTo(&core.Record{Level: core.WarnLevel, Message: "warn message"}, w); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if len(w.writes) != 1 {
		t.Fatalf("FormatTo() issued %d writes, want 1: %q", len(w.writes), w.writes)
	}
	if w.writes[0] != "[W] warn message\n" {
		t.Errorf("FormatTo() wrote %q", w.writes[0])
	}
}

func TestStyleFormatter_FormatToError(t *testing.T) {
	sinkErr := errors.New("broken pipe")
	w := &chunkWriter{err: sinkErr}

	err := NewStyleFormatter(nil).FormatTo(&core.Record{Level: core.InfoLevel, Message: "x"}, w)
	if err != sinkErr {
		t.Errorf("FormatTo() error = %v, want %v", err, sinkErr)
	}
}

func TestPutBuffer_DropsLargeBuffers(t *testing.T) {
	asciiProfile(t)
	f := NewStyleFormatter(nil)

	big := strings.Repeat("x", 128*1024)
	out, err := f.Format(&core.Record{Level: core.InfoLevel, Message: big})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if len(out) != len("[*] ")+len(big)+1 {
		t.Errorf("Format() length = %d", len(out))
	}
}

func BenchmarkStyleFormatter(b *testing.B) {
	f := NewStyleFormatter(nil)
	rec := &core.Record{Level: core.InfoLevel, Message: "test message"}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(rec)
	}
}

func BenchmarkStyleFormatter_FormatRecord(b *testing.B) {
	f := NewStyleFormatter(nil)
	rec := &core.Record{Level: core.InfoLevel, Message: "multi\nline\nmessage"}
	var buf bytes.Buffer

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		f.FormatRecord(rec, &buf)
	}
}
