package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Render holds the per-call rendering flags of a log record.
//
// The flags only influence destinations that shape text for humans
// (the console); file and syslog destinations ignore everything but Raw.
type Render struct {
	// Raw bypasses the level template; the message is emitted verbatim.
	Raw bool
	// NoNewline strips trailing whitespace and omits the terminating newline.
	NoNewline bool
	// WordWrap wraps each source line of the message to the console width.
	WordWrap bool
	// KeepJoined re-joins wrapped lines into a single multi-line record
	// instead of emitting one record per wrapped line.
	KeepJoined bool
}

// Entry represents a single log record with all its metadata
type Entry struct {
	Time      time.Time
	Level     Level
	Message   string
	Logger    string
	PID       int
	Goroutine uint64
	Caller    CallerInfo
	Render    Render
}

// CallerInfo contains information about the call site of a log record
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Defined   bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Logger = ""
	e.PID = 0
	e.Goroutine = 0
	e.Caller = CallerInfo{}
	e.Render = Render{}
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Defined:   true,
	}
}

// GoroutineID returns the id of the calling goroutine, parsed from the
// runtime.Stack header. It is only captured on channels that put a
// thread identifier in their template (the remote-shell debug log).
func GoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// Header is "goroutine <id> [...".
	s := buf[len("goroutine "):n]
	var id uint64
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
