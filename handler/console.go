package handler

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"go.uber.org/multierr"

	"github.com/armadactl/logging/core"
	"github.com/armadactl/logging/formatter"
)

// ColorMode controls level coloring of console output
type ColorMode int

const (
	// ColorAuto enables color when the normal stream is a terminal
	ColorAuto ColorMode = iota
	// ColorNever disables color
	ColorNever
	// ColorAlways enables color regardless of the stream
	ColorAlways
)

// ConsoleConfig holds configuration for the console destination
type ConsoleConfig struct {
	// Out is the normal stream (default: os.Stdout)
	Out io.Writer
	// Err is the error stream (default: os.Stderr)
	Err io.Writer
	// Formatter to use (default: formatter.NewConsole)
	Formatter formatter.Formatter
	// Color controls level coloring (default: ColorAuto)
	Color ColorMode
	// WrapWidth is the column word wrapping breaks at (default: 60)
	WrapWidth int
}

// Console writes log records to a pair of output streams. Records at
// Error severity and above go to the error stream, everything else to
// the normal stream. Writes are synchronous and unbuffered.
type Console struct {
	out       io.Writer
	errOut    io.Writer
	formatter formatter.Formatter
	color     bool
	wrapWidth int
	mu        sync.Mutex
}

var levelStyles = [int(core.FatalLevel) + 1]lipgloss.Style{
	core.DebugLevel:    lipgloss.NewStyle().Faint(true),
	core.InfoLevel:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.WarnLevel:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ErrorLevel:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.CriticalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.FatalLevel:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
}

// NewConsole creates a new console destination
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.Err == nil {
		cfg.Err = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewConsole(formatter.Config{})
	}
	if cfg.WrapWidth <= 0 {
		cfg.WrapWidth = wrapWidth
	}

	var color bool
	switch cfg.Color {
	case ColorAlways:
		color = true
	case ColorNever:
		color = false
	default:
		color = isTerminal(cfg.Out)
	}

	return &Console{
		out:       cfg.Out,
		errOut:    cfg.Err,
		formatter: cfg.Formatter,
		color:     color,
		wrapWidth: cfg.WrapWidth,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Handle writes a record to the stream selected by its severity,
// applying the record's rendering flags. A panic raised mid-emission is
// reported as a diagnostic on the error stream and never escapes to the
// caller; runtime.Goexit is not intercepted, so termination of the
// calling goroutine always propagates.
func (h *Console) Handle(e *core.Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.reportFailure(r)
			err = nil
		}
	}()

	if e.Render.WordWrap {
		return h.emitWrapped(e)
	}
	return h.emit(e)
}

// emitWrapped word-wraps the message and emits one record per wrapped
// line, or a single joined record when KeepJoined is set.
func (h *Console) emitWrapped(e *core.Entry) error {
	lines := wrapMessage(e.Message, h.wrapWidth)
	if e.Render.KeepJoined {
		lines = []string{strings.Join(lines, "\n")}
	}

	original := e.Message
	defer func() { e.Message = original }()

	var err error
	for _, line := range lines {
		e.Message = line
		err = multierr.Append(err, h.emit(e))
	}
	return err
}

func (h *Console) emit(e *core.Entry) error {
	text := string(h.formatter.Format(e))

	newline := "\n"
	if e.Render.NoNewline {
		text = strings.TrimRight(text, " \t\r\n")
		newline = ""
	}

	if h.color && !e.Render.Raw && int(e.Level) >= 0 && int(e.Level) < len(levelStyles) {
		text = levelStyles[e.Level].Render(text)
	}

	stream := h.out
	if e.Level >= core.ErrorLevel {
		stream = h.errOut
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(stream, text+newline)
	return err
}

func (h *Console) reportFailure(r interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fmt.Fprintf(h.errOut, "log router: console emission failed: %v\n", r)
}

// Close is a no-op; the console does not own its streams
func (h *Console) Close() error { return nil }
