package logger

import (
	"strings"

	"github.com/armadactl/logging/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
	FatalLevel    = core.FatalLevel
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	case "CRITICAL", "CRIT":
		return CriticalLevel
	case "FATAL":
		return FatalLevel
	default:
		return InfoLevel
	}
}
