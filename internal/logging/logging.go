// Package logging sets up the process logger. The terminal UI owns stdout
// and stderr, so debug output goes to a file or nowhere.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	FileName   = "timeflow.log"
	maxLogSize = 10 * 1024 * 1024
)

var ErrSetup = errors.New("logging: setup failed")

// Logger pairs a logger with the file behind it, if any.
type Logger struct {
	*log.Logger
	file *os.File
}

// Close releases the log file. It is safe on a discarding logger.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Path is the file being written, or "" when logging is off.
func (l *Logger) Path() string {
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Setup returns a discarding logger unless debug is set, in which case it
// appends to dir/timeflow.log at debug level. A file past maxLogSize is
// renamed with a timestamp first.
func Setup(debug bool, dir string) (*Logger, error) {
	if !debug {
		return &Logger{Logger: log.New(io.Discard)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}
	path := filepath.Join(dir, FileName)
	if err := rotate(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}

	l := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Prefix:          "timeflow",
	})
	l.Info("log opened", "pid", os.Getpid())
	return &Logger{Logger: l, file: f}, nil
}

func rotate(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() <= maxLogSize {
		return nil
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(path), fmt.Sprintf("timeflow-%s.log", stamp))
	return os.Rename(path, rotated)
}
