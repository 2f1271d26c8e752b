package logger

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/multierr"

	"github.com/armadactl/logging/core"
	"github.com/armadactl/logging/handler"
)

// callerSkip is the runtime.Caller depth from core.GetCaller to the
// call site: GetCaller, (*Channel).log, the leveled wrapper, the user.
const callerSkip = 3

// Channel is a named routing context. Emitting a record through a
// channel fans it out to every attached destination; each destination
// applies its own severity floor on top of the channel's.
//
// Channels are configured once at startup and then only emit, so the
// handler slice is replaced wholesale under the mutex on attach and
// read without copying on the emission path.
type Channel struct {
	name string

	mu            sync.RWMutex
	level         core.Level
	handlers      []handler.Handler
	captureCaller bool
	captureGID    bool
	pid           int
	onError       func(error)
}

func newChannel(name string) *Channel {
	return &Channel{
		name:     name,
		level:    core.InfoLevel,
		handlers: []handler.Handler{handler.Discard{}},
		pid:      os.Getpid(),
		onError:  reportToStderr,
	}
}

func reportToStderr(err error) {
	fmt.Fprintf(os.Stderr, "log router: %v\n", err)
}

// Name returns the channel name
func (c *Channel) Name() string { return c.name }

// SetLevel sets the channel's severity floor
func (c *Channel) SetLevel(level core.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = level
}

// Level returns the channel's severity floor
func (c *Channel) Level() core.Level {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

// Attach adds a destination to the channel
func (c *Channel) Attach(h handler.Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]handler.Handler, 0, len(c.handlers)+1)
	next = append(next, c.handlers...)
	next = append(next, h)
	c.handlers = next
}

// Handlers returns a snapshot of the attached destinations
func (c *Channel) Handlers() []handler.Handler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]handler.Handler, len(c.handlers))
	copy(snapshot, c.handlers)
	return snapshot
}

// CaptureCaller controls whether records carry file and line metadata.
// The primary channel enables it for its debug templates.
func (c *Channel) CaptureCaller(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.captureCaller = enabled
}

// CaptureGoroutine controls whether records carry the goroutine id.
// The remote-shell channel enables it for its thr= template field.
func (c *Channel) CaptureGoroutine(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.captureGID = enabled
}

// SetPID overrides the process id stamped on records (tests)
func (c *Channel) SetPID(pid int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pid = pid
}

// SetErrorFunc replaces the destination-failure callback
func (c *Channel) SetErrorFunc(fn func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if fn == nil {
		fn = reportToStderr
	}
	c.onError = fn
}

// Log emits a record at the given level
func (c *Channel) Log(level core.Level, msg string, opts ...Option) {
	c.log(level, msg, opts)
}

// log is the emission path shared by every entry point. It never
// returns an error and never panics: destination failures go to the
// error callback.
func (c *Channel) log(level core.Level, msg string, opts []Option) {
	c.mu.RLock()
	floor := c.level
	handlers := c.handlers
	captureCaller := c.captureCaller
	captureGID := c.captureGID
	pid := c.pid
	onError := c.onError
	c.mu.RUnlock()

	if level < floor || len(handlers) == 0 {
		return
	}

	e := core.GetEntry()
	e.Level = level
	e.Message = msg
	e.Logger = c.name
	e.PID = pid
	for _, opt := range opts {
		opt(&e.Render)
	}
	if captureCaller {
		e.Caller = core.GetCaller(callerSkip)
	}
	if captureGID {
		e.Goroutine = core.GoroutineID()
	}

	var err error
	for _, h := range handlers {
		err = multierr.Append(err, safeHandle(h, e))
	}
	core.PutEntry(e)

	if err != nil {
		onError(err)
	}
}

// safeHandle converts a destination panic into an error. recover does
// not intercept runtime.Goexit, so goroutine termination propagates
// through the logging layer unmodified.
func safeHandle(h handler.Handler, e *core.Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("destination panic: %v", r)
		}
	}()
	return h.Handle(e)
}

// Debug logs a debug message
func (c *Channel) Debug(msg string, opts ...Option) {
	c.log(core.DebugLevel, msg, opts)
}

// Info logs an info message
func (c *Channel) Info(msg string, opts ...Option) {
	c.log(core.InfoLevel, msg, opts)
}

// Warn logs a warning message
func (c *Channel) Warn(msg string, opts ...Option) {
	c.log(core.WarnLevel, msg, opts)
}

// Error logs an error message
func (c *Channel) Error(msg string, opts ...Option) {
	c.log(core.ErrorLevel, msg, opts)
}

// Critical logs a critical message
func (c *Channel) Critical(msg string, opts ...Option) {
	c.log(core.CriticalLevel, msg, opts)
}

// Fatal logs a fatal message. Fatal is a severity, not an exit: a
// logging call never terminates the host application.
func (c *Channel) Fatal(msg string, opts ...Option) {
	c.log(core.FatalLevel, msg, opts)
}

// Debugf logs a debug message with formatting
func (c *Channel) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < c.Level() {
		return
	}
	c.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (c *Channel) Infof(format string, args ...interface{}) {
	if core.InfoLevel < c.Level() {
		return
	}
	c.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (c *Channel) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < c.Level() {
		return
	}
	c.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (c *Channel) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < c.Level() {
		return
	}
	c.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (c *Channel) Criticalf(format string, args ...interface{}) {
	if core.CriticalLevel < c.Level() {
		return
	}
	c.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a fatal message with formatting
func (c *Channel) Fatalf(format string, args ...interface{}) {
	c.log(core.FatalLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes every attached destination
func (c *Channel) Close() error {
	c.mu.Lock()
	handlers := c.handlers
	c.handlers = []handler.Handler{handler.Discard{}}
	c.mu.Unlock()

	var err error
	for _, h := range handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
