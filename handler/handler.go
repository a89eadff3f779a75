package handler

import (
	"errors"
	"sync/atomic"

	"github.com/Philipp01105/colog/core"
)

// ErrClosed is returned by Handle after Close.
var ErrClosed = errors.New("handler closed")

// Handler defines the interface for record handlers
type Handler interface {
	// Handle formats and writes a record
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// Syncer is implemented by handlers whose sink can be flushed.
type Syncer interface {
	Sync() error
}

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts records written successfully
	ProcessedTotal uint64
	// FailedTotal counts records whose write returned an error
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// record counts the outcome of a single write and returns err unchanged.
func (s *Stats) record(err error) error {
	if err != nil {
		s.IncrementFailed()
	} else {
		s.IncrementProcessed()
	}
	return err
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed uint64
	Failed    uint64
}

// GetSnapshot returns a snapshot of the current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: atomic.LoadUint64(&s.ProcessedTotal),
		Failed:    atomic.LoadUint64(&s.FailedTotal),
	}
}
