package handler

import (
	"bytes"
	"sync"

	"github.com/armadactl/logging/core"
	"github.com/armadactl/logging/formatter"
)

// Buffer captures formatted records in memory. The primary channel
// attaches one at Debug floor so the full session transcript can be
// included in crash reports.
type Buffer struct {
	formatter formatter.Formatter
	mu        sync.Mutex
	buf       bytes.Buffer
}

// NewBuffer creates a new in-memory destination
func NewBuffer(f formatter.Formatter) *Buffer {
	if f == nil {
		f = formatter.NewDebug(formatter.Config{})
	}
	return &Buffer{formatter: f}
}

// Handle appends the formatted record to the buffer
func (h *Buffer) Handle(e *core.Entry) error {
	data := h.formatter.Format(e)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Write(data)
	h.buf.WriteByte('\n')
	return nil
}

// Contents returns everything captured so far
func (h *Buffer) Contents() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.String()
}

// Len returns the number of captured bytes
func (h *Buffer) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf.Len()
}

// Reset discards the captured session
func (h *Buffer) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
}

// Close is a no-op
func (h *Buffer) Close() error { return nil }
