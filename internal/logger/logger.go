// Package logger provides leveled logging on top of the standard log package.
// The TUI owns stdout while it runs, so callers point the logger at a file or
// at io.Discard.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a logging level
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a level name to a Level. Unknown names report false and
// fall back to InfoLevel.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return InfoLevel, false
	}
}

// Logger provides leveled logging
type Logger struct {
	level  Level
	logger *log.Logger
}

var (
	mu            sync.RWMutex
	defaultLogger = &Logger{level: InfoLevel, logger: log.New(os.Stderr, "", log.LstdFlags)}
)

// Init replaces the default logger. A nil writer discards output.
func Init(level string, w io.Writer) {
	l, _ := ParseLevel(level)
	if w == nil {
		w = io.Discard
	}

	mu.Lock()
	defaultLogger = &Logger{
		level:  l,
		logger: log.New(w, "", log.LstdFlags|log.Lmicroseconds),
	}
	mu.Unlock()
}

// Enabled reports whether messages at l are written.
func Enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger.level <= l
}

func output(l Level, format string, args ...any) {
	mu.RLock()
	lg := defaultLogger
	mu.RUnlock()
	if lg.level > l {
		return
	}
	msg := fmt.Sprintf("["+strings.ToUpper(l.String())+"] "+format, args...)
	_ = lg.logger.Output(3, msg)
}

// Debug logs a message at DebugLevel
func Debug(format string, args ...any) { output(DebugLevel, format, args...) }

// Info logs a message at InfoLevel
func Info(format string, args ...any) { output(InfoLevel, format, args...) }

// Warn logs a message at WarnLevel
func Warn(format string, args ...any) { output(WarnLevel, format, args...) }

// Error logs a message at ErrorLevel
func Error(format string, args ...any) { output(ErrorLevel, format, args...) }
