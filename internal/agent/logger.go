package agent

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

const timestampLayout = "2006-01-02 15:04:05"

// Logger separates command results from status messages. Results go to out
// as-is so they can be piped; status lines go to writer with a timestamp.
// Debug lines are dropped unless verbose is set.
type Logger struct {
	mu       sync.Mutex
	verbose  bool
	useColor bool
	writer   io.Writer
	out      io.Writer
}

// NewLogger writes results to stdout and status lines to stderr.
func NewLogger(verbose, useColor bool) *Logger {
	return NewLoggerWithWriter(verbose, useColor, os.Stderr, os.Stdout)
}

func NewLoggerWithWriter(verbose, useColor bool, writer, out io.Writer) *Logger {
	return &Logger{verbose: verbose, useColor: useColor, writer: writer, out: out}
}

// NewDevNullLogger discards everything.
func NewDevNullLogger() *Logger {
	return NewLoggerWithWriter(false, false, io.Discard, io.Discard)
}

func (l *Logger) SetVerbose(verbose bool) {
	l.mu.Lock()
	l.verbose = verbose
	l.mu.Unlock()
}

func (l *Logger) Output(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, format, args...)
}

func (l *Logger) OutputLine(format string, args ...interface{}) {
	l.Output(format+"\n", args...)
}

func (l *Logger) Info(format string, args ...interface{}) { l.status("", format, args) }
func (l *Logger) Error(format string, args ...interface{}) { l.status(colorRed, format, args) }
func (l *Logger) Success(format string, args ...interface{}) { l.status(colorGreen, format, args) }

func (l *Logger) Debug(format string, args ...interface{}) {
	l.mu.Lock()
	verbose := l.verbose
	l.mu.Unlock()
	if verbose {
		l.status(colorGray, format, args)
	}
}

func (l *Logger) status(color, format string, args []interface{}) {
	msg := l.colorize(fmt.Sprintf(format, args...), color)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.writer, "[%s] %s\n", time.Now().Format(timestampLayout), msg)
}

func (l *Logger) colorize(text, color string) string {
	if !l.useColor || color == "" {
		return text
	}
	return color + text + colorReset
}
