package formatter

import (
	"bytes"

	"github.com/armadactl/logging/core"
)

// template writes one console line for an entry into buf.
type template func(f *Console, e *core.Entry, buf *bytes.Buffer)

// Console formats log records for terminal display using a fixed
// per-level template table.
type Console struct {
	Config
	templates [int(core.FatalLevel) + 1]template
}

// NewConsole creates a new console formatter. The template table is
// complete by construction; a missing template is a programming error
// and reported immediately.
func NewConsole(cfg Config) *Console {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	c := &Console{Config: cfg}
	c.templates = [int(core.FatalLevel) + 1]template{
		core.DebugLevel:    (*Console).debugTemplate,
		core.InfoLevel:     (*Console).infoTemplate,
		core.WarnLevel:     (*Console).warnTemplate,
		core.ErrorLevel:    (*Console).errorTemplate,
		core.CriticalLevel: (*Console).errorTemplate,
		core.FatalLevel:    (*Console).errorTemplate,
	}
	for level, tmpl := range c.templates {
		if tmpl == nil {
			panic("formatter: no console template for level " + core.Level(level).String())
		}
	}
	return c
}

// Format formats an entry using the template selected by its severity.
// A record with the Raw render flag is returned verbatim, and a record
// with a severity outside the table falls back to a plain
// "LEVEL - message" line.
func (f *Console) Format(e *core.Entry) []byte {
	buf := getBuffer()
	switch {
	case e.Render.Raw:
		buf.WriteString(e.Message)
	case int(e.Level) >= 0 && int(e.Level) < len(f.templates):
		f.templates[e.Level](f, e, buf)
	default:
		f.genericTemplate(e, buf)
	}
	return copyOut(buf)
}

// infoTemplate: ">>> message"
func (f *Console) infoTemplate(e *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(">>> ")
	buf.WriteString(e.Message)
}

// warnTemplate: "*** WARN - message"
func (f *Console) warnTemplate(e *core.Entry, buf *bytes.Buffer) {
	buf.WriteString("*** ")
	f.genericTemplate(e, buf)
}

// errorTemplate: "!!! LEVEL - message"
func (f *Console) errorTemplate(e *core.Entry, buf *bytes.Buffer) {
	buf.WriteString("!!! ")
	f.genericTemplate(e, buf)
}

// debugTemplate: "timestamp PID: pid file:line DEBUG - message"
func (f *Console) debugTemplate(e *core.Entry, buf *bytes.Buffer) {
	writeDebugLine(buf, e, f.TimestampFormat)
}

// genericTemplate: "LEVEL - message"
func (f *Console) genericTemplate(e *core.Entry, buf *bytes.Buffer) {
	buf.WriteString(e.Level.String())
	buf.WriteString(" - ")
	buf.WriteString(e.Message)
}
