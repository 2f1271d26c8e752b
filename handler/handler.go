package handler

import (
	"github.com/armadactl/logging/core"
)

// Handler defines the interface for log destinations
type Handler interface {
	// Handle processes a log record
	Handle(entry *core.Entry) error

	// Close closes the destination and releases resources
	Close() error
}

// Discard is a destination that silently absorbs every record. Every
// channel starts with one attached so an unconfigured channel is safe
// to log through.
type Discard struct{}

// Handle absorbs the record
func (Discard) Handle(*core.Entry) error { return nil }

// Close is a no-op
func (Discard) Close() error { return nil }

// LevelFilter wraps a destination with its own severity floor.
// Records below the floor are dropped before reaching the destination.
type LevelFilter struct {
	min  core.Level
	next Handler
}

// NewLevelFilter creates a level filter in front of next
func NewLevelFilter(min core.Level, next Handler) *LevelFilter {
	return &LevelFilter{min: min, next: next}
}

// Min returns the severity floor
func (f *LevelFilter) Min() core.Level { return f.min }

// Handle forwards the record if its severity admits it
func (f *LevelFilter) Handle(e *core.Entry) error {
	if e.Level < f.min {
		return nil
	}
	return f.next.Handle(e)
}

// Close closes the wrapped destination
func (f *LevelFilter) Close() error { return f.next.Close() }
