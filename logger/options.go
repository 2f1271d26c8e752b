package logger

import "github.com/armadactl/logging/core"

// Option is a per-call rendering flag
type Option func(*core.Render)

// Raw bypasses the level template; the message is emitted verbatim
func Raw() Option {
	return func(r *core.Render) { r.Raw = true }
}

// NoNewline strips trailing whitespace and suppresses the terminating
// newline on the console
func NoNewline() Option {
	return func(r *core.Render) { r.NoNewline = true }
}

// WordWrap wraps long message lines at the console width
func WordWrap() Option {
	return func(r *core.Render) { r.WordWrap = true }
}

// KeepJoined emits a wrapped message as one multi-line record instead
// of one record per wrapped line. Only meaningful together with WordWrap.
func KeepJoined() Option {
	return func(r *core.Render) { r.KeepJoined = true }
}
