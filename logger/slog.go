package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/armadactl/logging/core"
)

// SlogHandler adapts a Channel to log/slog.Handler, so third-party
// libraries that log through the standard library can be routed into
// their debug channel:
//
//	shellLog := slog.New(logger.NewSlogHandler(reg.Channel("shell")))
//	sshClient.SetLogger(shellLog)
//
// The module has no structured logging; attributes are rendered inline
// as " key=value" text appended to the message.
type SlogHandler struct {
	channel *Channel
	prefix  string
	attrs   []slog.Attr
}

// NewSlogHandler creates a slog.Handler emitting into ch
func NewSlogHandler(ch *Channel) *SlogHandler {
	return &SlogHandler{channel: ch}
}

func slogLevelToCore(l slog.Level) core.Level {
	switch {
	case l < slog.LevelInfo:
		return core.DebugLevel
	case l < slog.LevelWarn:
		return core.InfoLevel
	case l < slog.LevelError:
		return core.WarnLevel
	default:
		return core.ErrorLevel
	}
}

// Enabled reports whether the channel's floor admits the level
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.channel.Level()
}

// Handle converts a slog.Record into a channel emission
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	for _, a := range s.attrs {
		writeAttr(&b, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, s.prefix, a)
		return true
	})

	s.channel.Log(slogLevelToCore(record.Level), b.String())
	return nil
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// WithAttrs returns a handler that appends the attributes to every record
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(merged, s.attrs)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: s.prefix + a.Key, Value: a.Value})
	}
	return &SlogHandler{channel: s.channel, prefix: s.prefix, attrs: merged}
}

// WithGroup returns a handler that prefixes subsequent attribute keys
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{channel: s.channel, prefix: s.prefix + name + ".", attrs: s.attrs}
}
