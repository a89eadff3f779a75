package benchmark

import (
	"sync/atomic"

	"github.com/Philipp01105/colog/core"
	"github.com/Philipp01105/colog/handler"
)

// noopHandler accepts records without formatting them, so benchmarks
// using it measure the logger front-end alone.
type noopHandler struct {
	handled atomic.Uint64
}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(rec *core.Record) error {
	_ = len(rec.Message)
	h.handled.Add(1)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
