// Package log provides context-aware logging for runlog.
//
// The terminal belongs to the interactive session, so diagnostics go to a
// log file in the data directory instead of stderr.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// FileName is the log file created inside the data directory.
const FileName = "runlog.log"

type ctxKey struct{}

// Logger writes leveled, structured diagnostics.
type Logger struct {
	*charmlog.Logger
	closer io.Closer
}

// New creates a logger writing to out at the given level
// ("debug", "info", "warn", "error"; empty means info).
func New(out io.Writer, level string) (*Logger, error) {
	lvl := charmlog.InfoLevel
	if level != "" {
		parsed, err := charmlog.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}

	l := charmlog.NewWithOptions(out, charmlog.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "runlog",
	})
	return &Logger{Logger: l}, nil
}

// Open creates a logger appending to <dir>/runlog.log.
// Close releases the file.
func Open(dir, level string) (*Logger, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	l, err := New(f, level)
	if err != nil {
		f.Close()
		return nil, err
	}
	l.closer = f
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: charmlog.New(io.Discard)}
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(keyvals ...any) *Logger {
	return &Logger{Logger: l.Logger.With(keyvals...)}
}

// Timed logs msg at debug level with the elapsed time once done is called.
func (l *Logger) Timed(msg string, keyvals ...any) (done func()) {
	start := time.Now()
	return func() {
		l.Debug(msg, append(keyvals, "took", time.Since(start).Round(time.Microsecond))...)
	}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Discard()
}
