package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log with mdview's event helpers.
type Logger struct {
	*log.Logger
}

func options(level log.Level) log.Options {
	return log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "mdview",
		Level:           level,
	}
}

// New creates a logger writing to w at info level.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	return &Logger{Logger: log.NewWithOptions(w, options(level))}
}

// NewFileLogger appends to the file at path, creating parent directories.
// The returned cleanup closes the file.
func NewFileLogger(path string, level log.Level) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	cleanup := func() {
		_ = f.Close()
	}
	return NewWithLevel(f, level), cleanup, nil
}

// Discard returns a logger that drops all output.
func Discard() *Logger {
	return NewWithLevel(io.Discard, log.FatalLevel)
}

// ParseLevel maps a config level name onto a charm/log level.
func ParseLevel(name string) (log.Level, error) {
	if strings.TrimSpace(name) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level %q: %w", name, err)
	}
	return level, nil
}

// DocumentLoaded logs a decoded source document.
func (l *Logger) DocumentLoaded(name string, bytes int) {
	l.Debug("document loaded",
		"source", name,
		"bytes", bytes)
}

// DocumentCompiled logs the outcome of one compile pass.
func (l *Logger) DocumentCompiled(blocks, links int, duration time.Duration) {
	l.Debug("document compiled",
		"blocks", blocks,
		"links", links,
		"duration", duration.Round(time.Microsecond))
}

// ConfigLoaded logs successful config loading.
func (l *Logger) ConfigLoaded(path string, found bool) {
	l.Debug("config loaded",
		"path", path,
		"found", found)
}

// LinkActivated logs a followed link.
func (l *Logger) LinkActivated(target string) {
	l.Info("link activated", "target", target)
}

// LinkRejected logs a destination that failed the scheme allow-list.
func (l *Logger) LinkRejected(destination string) {
	l.Debug("link rejected", "destination", destination)
}

// RaggedRow logs a table row with fewer cells than declared columns.
func (l *Logger) RaggedRow(row, cells, columns int) {
	l.Debug("ragged table row",
		"row", row,
		"cells", cells,
		"columns", columns)
}
