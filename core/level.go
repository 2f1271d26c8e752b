package core

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for errors the application cannot recover from
	CriticalLevel
	// FatalLevel for errors that end the current operation
	FatalLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Abbrev returns the three-character abbreviation used by the
// subsystem debug log templates (DEB, INF, WAR, ERR, CRI, FAT).
func (l Level) Abbrev() string {
	s := l.String()
	if len(s) > 3 {
		return s[:3]
	}
	return s
}
