package formatter

import (
	"testing"
	"time"

	"github.com/armadactl/logging/core"
)

func testEntry(level core.Level, msg string) *core.Entry {
	return &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   level,
		Message: msg,
		Logger:  "armada",
		PID:     1234,
		Caller: core.CallerInfo{
			File:      "/src/armada/cluster.go",
			ShortFile: "cluster.go",
			Line:      42,
			Defined:   true,
		},
	}
}

func TestConsole_Templates(t *testing.T) {
	f := NewConsole(Config{})

	tests := []struct {
		name  string
		level core.Level
		msg   string
		want  string
	}{
		{"info", core.InfoLevel, "starting cluster", ">>> starting cluster"},
		{"warn", core.WarnLevel, "node is slow", "*** WARN - node is slow"},
		{"error", core.ErrorLevel, "bad thing", "!!! ERROR - bad thing"},
		{"critical", core.CriticalLevel, "worse thing", "!!! CRITICAL - worse thing"},
		{"fatal", core.FatalLevel, "worst thing", "!!! FATAL - worst thing"},
		{"debug", core.DebugLevel, "hello",
			"2026-02-18 13:00:00,000 PID: 1234 cluster.go:42 DEBUG - hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(f.Format(testEntry(tt.level, tt.msg)))
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsole_Raw(t *testing.T) {
	f := NewConsole(Config{})

	for _, level := range []core.Level{core.DebugLevel, core.InfoLevel, core.ErrorLevel} {
		e := testEntry(level, "verbatim text\nwith a second line")
		e.Render.Raw = true
		got := string(f.Format(e))
		if got != e.Message {
			t.Errorf("raw %s: Format() = %q, want message verbatim", level, got)
		}
	}
}

func TestConsole_UnknownLevelFallsBack(t *testing.T) {
	f := NewConsole(Config{})

	e := testEntry(core.Level(99), "odd record")
	got := string(f.Format(e))
	if got != "UNKNOWN - odd record" {
		t.Errorf("Format() = %q, want generic fallback", got)
	}
}

func TestConsole_NoTrailingNewline(t *testing.T) {
	f := NewConsole(Config{})

	got := f.Format(testEntry(core.InfoLevel, "msg"))
	if len(got) == 0 || got[len(got)-1] == '\n' {
		t.Errorf("Format() must not append a newline, got %q", got)
	}
}

func TestDebug_AllLevelsShareTemplate(t *testing.T) {
	f := NewDebug(Config{})

	for _, level := range []core.Level{core.DebugLevel, core.InfoLevel, core.ErrorLevel} {
		got := string(f.Format(testEntry(level, "hello")))
		want := "2026-02-18 13:00:00,000 PID: 1234 cluster.go:42 " + level.String() + " - hello"
		if got != want {
			t.Errorf("Format(%s) = %q, want %q", level, got, want)
		}
	}
}

func TestDebug_UndefinedCaller(t *testing.T) {
	f := NewDebug(Config{})

	e := testEntry(core.DebugLevel, "hello")
	e.Caller = core.CallerInfo{}
	got := string(f.Format(e))
	want := "2026-02-18 13:00:00,000 PID: 1234 ?:0 DEBUG - hello"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestSubsystem_WithGoroutine(t *testing.T) {
	f := NewSubsystem(SubsystemConfig{IncludeGoroutine: true})

	e := testEntry(core.DebugLevel, "channel opened")
	e.Logger = "shell"
	e.Goroutine = 7
	got := string(f.Format(e))
	want := "PID: 1234 DEB [20260218-13:00:00.000] thr=7   shell: channel opened"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestSubsystem_WithoutGoroutine(t *testing.T) {
	f := NewSubsystem(SubsystemConfig{})

	e := testEntry(core.InfoLevel, "request sent")
	e.Logger = "api"
	got := string(f.Format(e))
	want := "PID: 1234 INF [20260218-13:00:00.000] api: request sent"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestSubsystem_WideGoroutineID(t *testing.T) {
	f := NewSubsystem(SubsystemConfig{IncludeGoroutine: true})

	e := testEntry(core.WarnLevel, "retrying")
	e.Logger = "shell"
	e.Goroutine = 123456
	got := string(f.Format(e))
	want := "PID: 1234 WAR [20260218-13:00:00.000] thr=123456 shell: retrying"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
