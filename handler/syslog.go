package handler

import (
	"log/syslog"
	"sync"

	"github.com/armadactl/logging/core"
	"github.com/armadactl/logging/formatter"
)

// SyslogConfig holds configuration for the syslog destination
type SyslogConfig struct {
	// Network and Addr select the syslog server; both empty means the
	// local daemon socket.
	Network string
	Addr    string
	// Tag is the syslog tag (default: "armada")
	Tag string
	// Formatter to use (default: formatter.NewDebug)
	Formatter formatter.Formatter
}

// Syslog forwards records to a syslog daemon, mapping severity levels
// onto syslog priorities.
type Syslog struct {
	writer    *syslog.Writer
	formatter formatter.Formatter
	mu        sync.Mutex
}

// NewSyslog dials the syslog daemon. It fails when no daemon is
// reachable; setup treats that as "skip the destination", not as a
// configuration error.
func NewSyslog(cfg SyslogConfig) (*Syslog, error) {
	if cfg.Tag == "" {
		cfg.Tag = "armada"
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewDebug(formatter.Config{})
	}

	w, err := syslog.Dial(cfg.Network, cfg.Addr, syslog.LOG_DEBUG|syslog.LOG_USER, cfg.Tag)
	if err != nil {
		return nil, err
	}

	return &Syslog{writer: w, formatter: cfg.Formatter}, nil
}

// Handle forwards the formatted record at the matching priority
func (h *Syslog) Handle(e *core.Entry) error {
	msg := string(h.formatter.Format(e))

	h.mu.Lock()
	defer h.mu.Unlock()

	switch e.Level {
	case core.DebugLevel:
		return h.writer.Debug(msg)
	case core.InfoLevel:
		return h.writer.Info(msg)
	case core.WarnLevel:
		return h.writer.Warning(msg)
	case core.ErrorLevel:
		return h.writer.Err(msg)
	case core.CriticalLevel:
		return h.writer.Crit(msg)
	case core.FatalLevel:
		return h.writer.Emerg(msg)
	default:
		return h.writer.Info(msg)
	}
}

// Close closes the connection to the daemon
func (h *Syslog) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.writer.Close()
}
