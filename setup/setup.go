package setup

import (
	"io"
	"os"

	"github.com/armadactl/logging/core"
	"github.com/armadactl/logging/formatter"
	"github.com/armadactl/logging/handler"
	"github.com/armadactl/logging/logger"
)

// Channel names wired by this package
const (
	// PrimaryChannel is the application channel of the armada command
	PrimaryChannel = "armada"
	// ShellChannel receives the remote-shell client library's records
	ShellChannel = "shell"
	// APIChannel receives the cloud-API client library's records
	APIChannel = "api"
)

// syslogSocket is the local syslog daemon socket, standard on most
// Linux distributions.
const syslogSocket = "/dev/log"

// PrimaryOptions configures the primary channel
type PrimaryOptions struct {
	// UseSyslog also forwards every record to the local syslog daemon.
	// Ignored when the host has no syslog socket.
	UseSyslog bool

	// ConsoleOut and ConsoleErr override the console streams (tests).
	// Defaults: os.Stdout and os.Stderr.
	ConsoleOut io.Writer
	ConsoleErr io.Writer
}

// Primary configures the application channel: severity floor Debug,
// with a rotating debug file, the console at Info floor, and an
// in-memory session buffer, all sharing the debug line template. The
// session buffer is returned so the caller can include the transcript
// in crash reports.
//
// With UseSyslog set, records are additionally forwarded to the local
// syslog daemon when its socket exists; a host without one is not an
// error.
func Primary(reg *logger.Registry, opts PrimaryOptions) (*handler.Buffer, error) {
	if err := EnsureDirs(); err != nil {
		return nil, err
	}

	ch := reg.Channel(PrimaryChannel)
	ch.SetLevel(core.DebugLevel)
	ch.CaptureCaller(true)

	debugFormat := formatter.NewDebug(formatter.Config{})

	file, err := handler.NewFile(handler.FileConfig{
		Path:      DebugLogPath(),
		Formatter: debugFormat,
	})
	if err != nil {
		return nil, err
	}
	ch.Attach(handler.NewLevelFilter(core.DebugLevel, file))

	console := handler.NewConsole(handler.ConsoleConfig{
		Out: opts.ConsoleOut,
		Err: opts.ConsoleErr,
	})
	ch.Attach(handler.NewLevelFilter(core.InfoLevel, console))

	session := handler.NewBuffer(debugFormat)
	ch.Attach(handler.NewLevelFilter(core.DebugLevel, session))

	if opts.UseSyslog {
		if _, err := os.Stat(syslogSocket); err == nil {
			sys, err := handler.NewSyslog(handler.SyslogConfig{Formatter: debugFormat})
			if err == nil {
				ch.Debugf("logging to %s", syslogSocket)
				ch.Attach(handler.NewLevelFilter(core.DebugLevel, sys))
			}
			// An undialable daemon is treated like an absent one.
		}
	}

	return session, nil
}

// RemoteShell configures the remote-shell debug channel: floor Debug,
// one rotating file using the subsystem template with goroutine ids.
func RemoteShell(reg *logger.Registry) error {
	return subsystemChannel(reg, ShellChannel, ShellDebugLogPath(), true)
}

// CloudAPI configures the cloud-API debug channel: floor Debug, one
// rotating file using the subsystem template without goroutine ids.
func CloudAPI(reg *logger.Registry) error {
	return subsystemChannel(reg, APIChannel, APIDebugLogPath(), false)
}

func subsystemChannel(reg *logger.Registry, name, path string, goroutines bool) error {
	if err := EnsureDirs(); err != nil {
		return err
	}

	ch := reg.Channel(name)
	ch.SetLevel(core.DebugLevel)
	ch.CaptureGoroutine(goroutines)

	file, err := handler.NewFile(handler.FileConfig{
		Path:      path,
		Formatter: formatter.NewSubsystem(formatter.SubsystemConfig{IncludeGoroutine: goroutines}),
	})
	if err != nil {
		return err
	}
	ch.Attach(handler.NewLevelFilter(core.DebugLevel, file))

	return nil
}
