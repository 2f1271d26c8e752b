// Package core defines the shared types used across the armada logging
// module.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log record, and the Render type that carries the
// per-call rendering flags (raw passthrough, newline suppression, word
// wrapping, wrap joining).
//
// Entry objects are pooled via sync.Pool so that the emission path stays
// allocation-free for filtered and simple records. Callers get an Entry
// with GetEntry and must return it with PutEntry once every destination
// has consumed it.
//
// Caller information (file and line) and the goroutine id are expensive
// to capture, so channels only fill them in when a destination's template
// actually uses them.
package core
