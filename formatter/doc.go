// Package formatter defines how log records are turned into display text.
//
// A Formatter maps a core.Entry to a byte slice without a trailing
// newline; newline policy belongs to the destination, because the
// console supports per-record newline suppression while files always
// terminate records.
//
// Three formatters cover every destination of the module:
//
//   - Console selects a template by severity: ">>> msg" for Info,
//     "*** WARN - msg" for warnings, "!!! LEVEL - msg" for errors, and a
//     full timestamp/pid/caller line for Debug. A record with the Raw
//     render flag bypasses the table entirely.
//   - Debug renders the full "timestamp PID: pid file:line LEVEL - msg"
//     line at every level. It backs the rotating debug file, the
//     in-memory session buffer, and syslog.
//   - Subsystem renders the compact third-party debug line with an
//     abbreviated level, millisecond timestamp, optional goroutine id,
//     and the channel name.
//
// The Console template table is fixed and checked at construction, so a
// severity without a template is caught at startup instead of at the
// first log call. Formatting itself cannot fail; all formatters write
// into a pooled bytes.Buffer.
package formatter
