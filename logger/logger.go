// Package logger provides named, colour-prefixed loggers.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
)

const (
	LogErrorColor   = "\033[31m"
	LogInfoColor    = "\033[32m"
	LogWarningColor = "\033[33m"
	LogColorReset   = "\033[0m"
)

// Color constants for logger names
const (
	ColorGreen   = "\033[32m"
	ColorBlue    = "\033[34m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)

var (
	ErrNilWriter = errors.New("logger writer is nil")
)

// Logger writes "[NAME] [LEVEL] message" lines with the name in its colour.
type Logger struct {
	out *log.Logger
}

// New creates a logger for the component name, writing to w.
func New(name, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	prefix := fmt.Sprintf("%s[%s]%s ", color, name, ColorReset)
	if color == "" {
		prefix = fmt.Sprintf("[%s] ", name)
	}

	return &Logger{
		out: log.New(w, prefix, log.LstdFlags|log.Lmsgprefix),
	}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{out: log.New(io.Discard, "", 0)}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[INFO]%s %s", LogInfoColor, LogColorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.out.Printf("%s[WARNING]%s %s", LogWarningColor, LogColorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[ERROR]%s %s", LogErrorColor, LogColorReset, msg)
}
