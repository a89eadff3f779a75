package handler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/formatter"
	"github.com/Philipp01105/colog/style"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: a StyleFormatter for Style)
	Formatter formatter.Formatter
	// Style used when Formatter is nil (default: style.Default)
	Style style.Style
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// When true, the handler skips write-level locking for parallel records.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// lockedWriter wraps an io.Writer with the handler's mutex, acquiring
// the lock only for Write calls.
type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleHandler writes formatted records to an io.Writer
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	stats           *Stats
	mu              sync.Mutex // protects syncBuf and serializes writes
	lw              lockedWriter
	syncBuf         bytes.Buffer
	bufPool         sync.Pool
	closed          atomic.Bool
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewStyleFormatter(cfg.Style)
	}

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          NewStats(),
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.lw = lockedWriter{mu: &h.mu, w: h.writer}
	h.bufPool = sync.Pool{
		New: func() interface{} {
			b := new(bytes.Buffer)
			b.Grow(256)
			return b
		},
	}
	h.syncBuf.Grow(256)
	return h
}

// Handle formats a record and writes it with a single Write call.
// Uses TryLock on mu to format into the handler-owned buffer when
// uncontended. When contended, formats into a pooled buffer outside the
// lock and then writes under mu (or directly for concurrent-safe writers).
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	if h.closed.Load() {
		return ErrClosed
	}

	if h.bufferFormatter != nil {
		if h.mu.TryLock() {
			h.syncBuf.Reset()
			h.bufferFormatter.FormatRecord(rec, &h.syncBuf)
			_, err := h.writer.Write(h.syncBuf.Bytes())
			h.mu.Unlock()
			return h.stats.record(err)
		}

		buf := h.bufPool.Get().(*bytes.Buffer)
		buf.Reset()
		h.bufferFormatter.FormatRecord(rec, buf)
		var err error
		if h.concurrentSafe {
			_, err = h.writer.Write(buf.Bytes())
		} else {
			_, err = h.lw.Write(buf.Bytes())
		}
		if buf.Cap() <= 64*1024 {
			h.bufPool.Put(buf)
		}
		return h.stats.record(err)
	}

	if h.writerFormatter != nil {
		if h.concurrentSafe {
			return h.stats.record(h.writerFormatter.FormatTo(rec, h.writer))
		}
		return h.stats.record(h.writerFormatter.FormatTo(rec, &h.lw))
	}

	data, err := h.formatter.Format(rec)
	if err != nil {
		return h.stats.record(err)
	}
	if h.concurrentSafe {
		_, err = h.writer.Write(data)
	} else {
		_, err = h.lw.Write(data)
	}
	return h.stats.record(err)
}

// Sync flushes the writer if it supports it.
func (h *ConsoleHandler) Sync() error {
	if s, ok := h.writer.(Syncer); ok {
		return s.Sync()
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. The writer is left open.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}
