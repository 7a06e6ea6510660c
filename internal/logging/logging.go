package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	debugEnabled atomic.Bool
	std          = newStdLogger(os.Stderr)

	traceMu  sync.Mutex
	tracer   *logrus.Logger
	traceOut io.Closer
)

func newStdLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableQuote: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetOutput redirects application logs.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// EnableDebug turns on verbose debug logging for the application lifecycle.
func EnableDebug() {
	debugEnabled.Store(true)
	std.SetLevel(logrus.DebugLevel)
	std.Debug("debug logging enabled")
}

// DisableDebug reverts EnableDebug.
func DisableDebug() {
	debugEnabled.Store(false)
	std.SetLevel(logrus.InfoLevel)
}

// DebugEnabled reports whether debug logging is active.
func DebugEnabled() bool {
	return debugEnabled.Load()
}

// Debugf emits a formatted debug log message when debugging is enabled.
func Debugf(format string, args ...interface{}) {
	if !DebugEnabled() {
		return
	}
	std.Debugf(format, args...)
}

// Printf emits an informational message.
func Printf(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Errorf emits an error message. It never terminates the process.
func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

// Configure opens path for structured trace entries and enables tracing. An
// empty path disables tracing. Directories are created when missing.
func Configure(path string) error {
	traceMu.Lock()
	defer traceMu.Unlock()

	closeTraceLocked()
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create trace directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open trace log: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetFormatter(&logrus.JSONFormatter{})
	tracer = l
	traceOut = f
	return nil
}

// Close flushes and disables tracing.
func Close() {
	traceMu.Lock()
	defer traceMu.Unlock()
	closeTraceLocked()
}

func closeTraceLocked() {
	if traceOut != nil {
		_ = traceOut.Close()
	}
	tracer = nil
	traceOut = nil
}

// TraceEnabled reports whether Configure installed a trace sink.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return tracer != nil
}

// Trace appends a structured JSON entry when tracing is enabled.
func Trace(event string, fields map[string]interface{}) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if tracer == nil {
		return
	}
	tracer.WithFields(logrus.Fields(fields)).Info(event)
}
