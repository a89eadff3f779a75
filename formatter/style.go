package formatter

import (
	"bytes"
	"io"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/style"
)

// StyleFormatter formats records with a style.Style
type StyleFormatter struct {
	style style.Style
}

// NewStyleFormatter creates a formatter for s. A nil style uses style.Default.
func NewStyleFormatter(s style.Style) *StyleFormatter {
	if s == nil {
		s = style.Default{}
	}
	return &StyleFormatter{style: s}
}

// Style returns the style used by the formatter.
func (f *StyleFormatter) Style() style.Style {
	return f.style
}

// Format formats a record into a new byte slice
func (f *StyleFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it to w in a single Write call
func (f *StyleFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.FormatRecord(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter).
func (f *StyleFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	// bytes.Buffer writes only fail by panicking on overflow
	_ = f.style.Format(buf, rec)
}
