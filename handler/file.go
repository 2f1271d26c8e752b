package handler

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/armadactl/logging/core"
	"github.com/armadactl/logging/formatter"
)

// Default rotation policy of the debug logs: 1 MiB per file, two
// numbered backups (three files total per channel).
const (
	DefaultMaxSize    = 1 << 20
	DefaultMaxBackups = 2
)

// FileConfig holds configuration for the rotating file destination
type FileConfig struct {
	// Path is the log file path (required)
	Path string
	// Formatter to use (default: formatter.NewDebug)
	Formatter formatter.Formatter
	// MaxSize is the size in bytes a file may grow to before rotation
	// (default: DefaultMaxSize; negative disables rotation)
	MaxSize int64
	// MaxBackups is the number of rotated files to retain
	// (default: DefaultMaxBackups; negative keeps none)
	MaxBackups int
}

// File writes log records to a file, rotating it through numbered
// backups when a write would push it past the size cap:
// debug.log becomes debug.log.1, debug.log.1 becomes debug.log.2, and
// the oldest backup is dropped.
type File struct {
	path       string
	file       *os.File
	formatter  formatter.Formatter
	maxSize    int64
	maxBackups int
	size       int64
	mu         sync.Mutex
}

// NewFile opens a rotating file destination. The parent directory must
// already exist; setup ensures it before configuring a channel.
func NewFile(cfg FileConfig) (*File, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("log file path is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewDebug(formatter.Config{})
	}
	if cfg.MaxSize == 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = DefaultMaxBackups
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	return &File{
		path:       cfg.Path,
		file:       file,
		formatter:  cfg.Formatter,
		maxSize:    cfg.MaxSize,
		maxBackups: cfg.MaxBackups,
		size:       info.Size(),
	}, nil
}

// Handle formats and writes a record, rotating first when the record
// would push the file past the size cap
func (h *File) Handle(e *core.Entry) error {
	data := h.formatter.Format(e)
	data = append(data, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.maxSize > 0 && h.size+int64(len(data)) > h.maxSize {
		if err := h.rotate(); err != nil {
			return err
		}
	}

	n, err := h.file.Write(data)
	h.size += int64(n)
	return err
}

// rotate shifts the numbered backups up by one and reopens a fresh file
func (h *File) rotate() error {
	if err := h.file.Close(); err != nil {
		return err
	}

	if h.maxBackups > 0 {
		// Renames over an existing file replace it, so the oldest
		// backup falls off the end.
		for i := h.maxBackups - 1; i >= 1; i-- {
			os.Rename(h.backupName(i), h.backupName(i+1))
		}
		if err := os.Rename(h.path, h.backupName(1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if h.maxBackups <= 0 {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(h.path, flags, 0644)
	if err != nil {
		return err
	}

	h.file = file
	h.size = 0
	return nil
}

func (h *File) backupName(i int) string {
	return h.path + "." + strconv.Itoa(i)
}

// Path returns the log file path
func (h *File) Path() string { return h.path }

// Close syncs and closes the file
func (h *File) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}
	if err := h.file.Sync(); err != nil {
		h.file.Close()
		return err
	}
	return h.file.Close()
}
