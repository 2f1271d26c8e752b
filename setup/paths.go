package setup

import (
	"os"
	"path/filepath"
)

// DirEnv overrides the armada directory when set
const DirEnv = "ARMADA_DIR"

const (
	defaultDirName = ".armada"
	logDirName     = "logs"

	debugLogName      = "debug.log"
	shellDebugLogName = "shell-debug.log"
	apiDebugLogName   = "api-debug.log"
)

// Dir returns the armada directory: $ARMADA_DIR if set, otherwise
// ~/.armada. When the home directory cannot be resolved it falls back
// to a relative .armada, keeping startup usable in stripped-down
// environments like containers.
func Dir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDirName
	}
	return filepath.Join(home, defaultDirName)
}

// LogDir returns the directory holding the rotating debug logs
func LogDir() string {
	return filepath.Join(Dir(), logDirName)
}

// DebugLogPath returns the primary channel's debug log path
func DebugLogPath() string {
	return filepath.Join(LogDir(), debugLogName)
}

// ShellDebugLogPath returns the remote-shell channel's debug log path
func ShellDebugLogPath() string {
	return filepath.Join(LogDir(), shellDebugLogName)
}

// APIDebugLogPath returns the cloud-API channel's debug log path
func APIDebugLogPath() string {
	return filepath.Join(LogDir(), apiDebugLogName)
}

// EnsureDirs creates the armada and log directories if missing
func EnsureDirs() error {
	return os.MkdirAll(LogDir(), 0700)
}
