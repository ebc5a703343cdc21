// Package log provides structured logging for pagekit.
// Entries carry a level, a category and key=value fields, are written to a
// debug log file and are republished on a broker for in-app log viewers.
// Logging stays off unless --debug or PAGEKIT_DEBUG turns it on.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/pagekit/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string to a Level. Unknown values map to debug.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelDebug
	}
}

// Category groups related log messages.
type Category string

const (
	CatBoot     Category = "boot"     // Bootstrap sequence steps
	CatPlugin   Category = "plugin"   // Plugin registration and init
	CatSkeleton Category = "skeleton" // Layout widgets
	CatSetter   Category = "setter"   // Setter registry
	CatAssets   Category = "assets"   // Asset manifest loading
	CatPages    Category = "pages"    // Page schema fetch/save/preview
	CatStore    Category = "store"    // SQLite schema store
	CatConfig   Category = "config"   // Configuration loading
	CatWatcher  Category = "watcher"  // File watcher events
	CatCache    Category = "cache"    // Cache operations
	CatUI       Category = "ui"       // Shell view
	CatTrace    Category = "trace"    // Tracing provider
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
}

var (
	defaultLogger *Logger
	initMu        sync.Mutex
)

// Init opens path for appending and installs it as the global log target.
// Returns a cleanup function that closes the file.
func Init(path string) (func(), error) {
	initMu.Lock()
	defer initMu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: debug log path comes from the user
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defaultLogger = newLogger(f, f)
	return func() { _ = f.Close() }, nil
}

// InitWithTeaLog uses tea.LogToFile so Bubble Tea's own logging lands in the same file.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	initMu.Lock()
	defer initMu.Unlock()

	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, err
	}
	defaultLogger = newLogger(f, f)
	return func() { _ = f.Close() }, nil
}

// InitWriter installs w as the log target. Used by tests.
func InitWriter(w io.Writer) {
	initMu.Lock()
	defer initMu.Unlock()
	defaultLogger = newLogger(nil, w)
}

// Reset drops the global logger; logging becomes a no-op.
func Reset() {
	initMu.Lock()
	defer initMu.Unlock()
	if defaultLogger != nil && defaultLogger.broker != nil {
		defaultLogger.broker.Close()
	}
	defaultLogger = nil
}

func newLogger(f *os.File, w io.Writer) *Logger {
	return &Logger{
		file:     f,
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
	}
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	l := defaultLogger
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel {
		return
	}

	// 2026-01-02T10:45:00 [INFO] [boot] message key=value
	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&b, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')
	entry := b.String()

	if l.writer != nil {
		_, _ = io.WriteString(l.writer, entry)
	}
	if l.broker != nil {
		l.broker.Publish(pubsub.CreatedEvent, entry)
	}
}

// LogEvent is a pubsub event containing a log entry.
type LogEvent = pubsub.Event[string]

// LogListener wraps a continuous listener for log events.
type LogListener = pubsub.ContinuousListener[string]

// NewListener subscribes to log entries until ctx is cancelled.
// Returns nil when logging is not initialized.
func NewListener(ctx context.Context) *LogListener {
	if defaultLogger == nil || defaultLogger.broker == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, defaultLogger.broker)
}
