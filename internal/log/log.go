package log

import (
	"io"
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
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
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name. Unknown names map to INFO so a typo in
// a config file never floods the browser console with per-frame debug lines.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger writes levelled lines of the form "LEVEL: [TAG] message".
// Children created with With share the parent's output and level.
type Logger struct {
	logger *log.Logger
	level  *Level
	tag    string
}

func New(out io.Writer, level Level) *Logger {
	lvl := level
	return &Logger{
		logger: log.New(out, "", 0),
		level:  &lvl,
	}
}

// Default logs to stderr at INFO.
func Default() *Logger { return New(os.Stderr, LevelInfo) }

// Discard returns a logger that drops everything.
func Discard() *Logger { return New(io.Discard, LevelNone) }

// With returns a child logger that prefixes every line with "[tag]".
func (l *Logger) With(tag string) *Logger {
	return &Logger{logger: l.logger, level: l.level, tag: "[" + strings.ToUpper(tag) + "] "}
}

func (l *Logger) printf(lvl Level, format string, v ...interface{}) {
	if *l.level > lvl {
		return
	}
	l.logger.Printf(lvl.String()+": "+l.tag+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.printf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...interface{}) { l.printf(LevelInfo, format, v...) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.printf(LevelWarn, format, v...) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.printf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	*l.level = level
}

func (l *Logger) Level() Level {
	return *l.level
}
