package formatter

import (
	"strconv"

	"github.com/armadactl/logging/core"
)

// subsystemTimestampFormat is the compact millisecond layout of the
// third-party subsystem debug logs.
const subsystemTimestampFormat = "20060102-15:04:05.000"

// SubsystemConfig holds configuration for the subsystem formatter
type SubsystemConfig struct {
	// IncludeGoroutine adds a "thr=<id>" field after the timestamp.
	// The remote-shell log carries it, the cloud-API log does not.
	IncludeGoroutine bool
}

// Subsystem formats records for the third-party debug logs:
//
//	PID: 123 DEB [20060102-15:04:05.000] thr=7   shell: message
type Subsystem struct {
	SubsystemConfig
}

// NewSubsystem creates a new subsystem formatter
func NewSubsystem(cfg SubsystemConfig) *Subsystem {
	return &Subsystem{SubsystemConfig: cfg}
}

// Format formats an entry as a subsystem debug line
func (f *Subsystem) Format(e *core.Entry) []byte {
	buf := getBuffer()

	buf.WriteString("PID: ")
	buf.WriteString(strconv.Itoa(e.PID))
	buf.WriteByte(' ')
	buf.WriteString(e.Level.Abbrev())
	buf.WriteString(" [")
	buf.Write(e.Time.AppendFormat(buf.AvailableBuffer(), subsystemTimestampFormat))
	buf.WriteString("] ")

	if f.IncludeGoroutine {
		buf.WriteString("thr=")
		id := strconv.FormatUint(e.Goroutine, 10)
		buf.WriteString(id)
		// Pad to three columns so adjacent fields stay aligned.
		for i := len(id); i < 3; i++ {
			buf.WriteByte(' ')
		}
		buf.WriteByte(' ')
	}

	buf.WriteString(e.Logger)
	buf.WriteString(": ")
	buf.WriteString(e.Message)

	return copyOut(buf)
}
