// Package logger is the public API of the armada logging module. Most
// users only need to import this package and setup.
//
// A Registry holds named Channels. A Channel is a routing context with
// its own severity floor and a set of attached destinations; emitting a
// record fans it out to every destination whose floor admits the
// record's severity. Channels are created on first use and live for the
// process; a freshly created channel carries only a discard
// destination, so the module is safe to use as a library with no
// configuration at all.
//
// The registry is an explicit object rather than package state: code
// that logs receives a *Registry (or a *Channel), and tests construct
// isolated registries that write into buffers.
//
//	reg := logger.NewRegistry()
//	session, err := setup.Primary(reg, setup.PrimaryOptions{})
//	...
//	log := reg.Channel(setup.PrimaryChannel)
//	log.Info("cluster is up")
//	log.Error("node n-3 unreachable")
//	log.Info(motd, logger.Raw())
//
// Per-call rendering flags are passed as options: Raw bypasses the
// level template, NoNewline suppresses the trailing newline, WordWrap
// wraps long lines at the console width, and KeepJoined turns a
// wrapped message into one multi-line record.
//
// Logging never panics and never returns an error to the caller;
// destination failures are aggregated and handed to the channel's
// error callback, which by default prints a single diagnostic line to
// stderr.
package logger
