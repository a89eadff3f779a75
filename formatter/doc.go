// Package formatter defines how records are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which appends to a caller-owned bytes.Buffer.
// Handlers check for the optional interfaces at construction time and
// prefer them when available.
//
// StyleFormatter implements all three on top of a style.Style. It
// renders each record into a pooled bytes.Buffer first, so the sink
// receives exactly one Write per record no matter how many pieces the
// style writes.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
