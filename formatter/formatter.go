package formatter

import (
	"bytes"
	"strconv"
	"sync"

	"github.com/armadactl/logging/core"
)

// DefaultTimestampFormat is the timestamp layout of the debug templates.
const DefaultTimestampFormat = "2006-01-02 15:04:05,000"

// Formatter defines the interface for log record formatters.
// The returned text carries no trailing newline.
type Formatter interface {
	Format(entry *core.Entry) []byte
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// copyOut returns a copy of the buffer's content and recycles the buffer.
func copyOut(buf *bytes.Buffer) []byte {
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	putBuffer(buf)
	return result
}

// writeCaller writes "file:line" for the record's call site.
func writeCaller(buf *bytes.Buffer, e *core.Entry) {
	if e.Caller.Defined {
		buf.WriteString(e.Caller.ShortFile)
	} else {
		buf.WriteByte('?')
	}
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(e.Caller.Line))
}

// writeDebugLine writes the shared "timestamp PID: pid file:line LEVEL - msg"
// template used by the Debug formatter and the console's Debug template.
func writeDebugLine(buf *bytes.Buffer, e *core.Entry, layout string) {
	buf.Write(e.Time.AppendFormat(buf.AvailableBuffer(), layout))
	buf.WriteString(" PID: ")
	buf.WriteString(strconv.Itoa(e.PID))
	buf.WriteByte(' ')
	writeCaller(buf, e)
	buf.WriteByte(' ')
	buf.WriteString(e.Level.String())
	buf.WriteString(" - ")
	buf.WriteString(e.Message)
}
