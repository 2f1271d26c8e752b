package formatter

import (
	"github.com/armadactl/logging/core"
)

// Debug formats every record as the full debug line
// "timestamp PID: pid file:line LEVEL - message", regardless of level.
// It backs the primary channel's rotating file, session buffer, and
// syslog destinations.
type Debug struct {
	Config
}

// NewDebug creates a new debug formatter
func NewDebug(cfg Config) *Debug {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &Debug{Config: cfg}
}

// Format formats an entry as a debug line. Raw records stay verbatim so
// that session captures match what the user saw on screen.
func (f *Debug) Format(e *core.Entry) []byte {
	buf := getBuffer()
	if e.Render.Raw {
		buf.WriteString(e.Message)
	} else {
		writeDebugLine(buf, e, f.TimestampFormat)
	}
	return copyOut(buf)
}
