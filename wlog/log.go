// Package wlog is a small leveled logging façade: a fixed level set
// (trace through fatal), a colorized stderr sink gated by a quiet flag
// and a minimum level, and up to 32 additional registered sinks each with
// their own minimum level — one of which, AddFile, writes a distinct,
// date-qualified timestamp format to a file.
package wlog

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level is a logging severity, ordered trace (least severe) to fatal
// (most severe).
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Entry is one formatted log record, handed to every registered sink.
type Entry struct {
	Time    time.Time
	Level   Level
	File    string
	Line    int
	Message string
}

// Callback receives every Entry at or above the level it was registered
// with.
type Callback func(Entry)

// maxSinks matches the fixed-capacity callback table of the logger this
// package is modeled on; registration beyond it fails rather than
// growing unbounded.
const maxSinks = 32

type sink struct {
	level Level
	fn    Callback
}

var (
	mu          sync.Mutex
	level       = LevelTrace
	quiet       = false
	colorize    = true
	sinks       []sink
	stderrColor = map[Level]*color.Color{
		LevelTrace: color.New(color.FgWhite),
		LevelDebug: color.New(color.FgCyan),
		LevelInfo:  color.New(color.FgGreen),
		LevelWarn:  color.New(color.FgYellow),
		LevelError: color.New(color.FgRed),
		LevelFatal: color.New(color.FgRed, color.Bold),
	}
)

// SetLevel sets the minimum level the stderr sink writes.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetQuiet silences the stderr sink entirely without affecting any
// registered callback or file sink.
func SetQuiet(q bool) {
	mu.Lock()
	defer mu.Unlock()
	quiet = q
}

// SetColor toggles ANSI colorization of the stderr sink.
func SetColor(c bool) {
	mu.Lock()
	defer mu.Unlock()
	colorize = c
}

// AddCallback registers fn to receive every Entry at or above minLevel.
// It returns an error once maxSinks callbacks are already registered.
func AddCallback(minLevel Level, fn Callback) error {
	mu.Lock()
	defer mu.Unlock()
	if len(sinks) >= maxSinks {
		return fmt.Errorf("wlog: cannot register more than %d sinks", maxSinks)
	}
	sinks = append(sinks, sink{level: minLevel, fn: fn})
	return nil
}

// AddFile opens path for appending and registers a sink that writes to
// it using a date-qualified timestamp distinct from the stderr sink's.
func AddFile(path string, minLevel Level) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("wlog: open log file: %w", err)
	}
	return AddCallback(minLevel, func(e Entry) {
		fmt.Fprintf(f, "%s %s %s:%d: %s\n",
			e.Time.Format("2006-01-02 15:04:05"), e.Level, e.File, e.Line, e.Message)
	})
}

func writeLog(l Level, skip int, format string, args ...any) {
	mu.Lock()
	cur, q, c := level, quiet, colorize
	activeSinks := append([]sink(nil), sinks...)
	mu.Unlock()

	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "???", 0
	}
	e := Entry{Time: time.Now(), Level: l, File: file, Line: line, Message: fmt.Sprintf(format, args...)}

	if !q && l >= cur {
		prefix := fmt.Sprintf("%s %-5s %s:%d:", e.Time.Format("15:04:05"), e.Level, e.File, e.Line)
		if c {
			stderrColor[l].Fprintf(os.Stderr, "%s %s\n", prefix, e.Message)
		} else {
			fmt.Fprintf(os.Stderr, "%s %s\n", prefix, e.Message)
		}
	}

	for _, s := range activeSinks {
		if l >= s.level {
			s.fn(e)
		}
	}
}

// Trace logs at LevelTrace.
func Trace(format string, args ...any) { writeLog(LevelTrace, 2, format, args...) }

// Debug logs at LevelDebug.
func Debug(format string, args ...any) { writeLog(LevelDebug, 2, format, args...) }

// Info logs at LevelInfo.
func Info(format string, args ...any) { writeLog(LevelInfo, 2, format, args...) }

// Warn logs at LevelWarn.
func Warn(format string, args ...any) { writeLog(LevelWarn, 2, format, args...) }

// Error logs at LevelError.
func Error(format string, args ...any) { writeLog(LevelError, 2, format, args...) }

// Fatal logs at LevelFatal then terminates the process with status 1.
func Fatal(format string, args ...any) {
	writeLog(LevelFatal, 2, format, args...)
	os.Exit(1)
}
