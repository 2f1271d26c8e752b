// Package handler provides the Handler interface and the destination
// implementations a channel can fan out to.
//
// Every destination is synchronous: Handle formats the record and
// writes it before returning. The router deliberately runs no
// background goroutines, queues, or timers; a CLI tool wants its log
// lines on disk and on screen the moment they happen, and the mutex
// guarding each destination is the only synchronization involved.
//
// Built-in destinations:
//
//   - Console writes to a normal and an error stream, routing by
//     severity, and applies the per-record rendering flags (word wrap,
//     newline suppression, raw passthrough). Lines are colored by level
//     when the stream is a terminal.
//   - File writes to a rotating log file with numbered backups
//     (debug.log, debug.log.1, debug.log.2).
//   - Buffer captures formatted records in memory for session dumps.
//   - Syslog forwards records to the local syslog daemon.
//   - LevelFilter wraps any destination with an independent severity
//     floor.
//   - Discard absorbs everything; it is the default destination of an
//     unconfigured channel.
//
// A destination returns errors to the channel, which reports them
// through its error callback. The Console handler additionally recovers
// panics raised mid-emission and turns them into a diagnostic line on
// the error stream, so a broken writer can never take the host
// application down.
package handler
