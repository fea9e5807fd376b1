package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

// Logger is the leveled logger used across the pipeline. Methods take a
// context so call sites stay uniform even where cancellation is in play.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

type implLogger struct {
	logger *log.Logger
	level  int
}

// New creates a Logger that writes to stdout at the given level.
// Unknown levels default to info.
func New(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a Logger writing to w. Used by tests.
func NewWithWriter(level string, w io.Writer) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  parseLevel(level),
	}
}

func parseLevel(level string) int {
	switch strings.ToLower(level) {
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

func (l *implLogger) logf(level int, tag, msg string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.logger.Printf(tag+" "+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelDebug, "[DEBUG]", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelInfo, "[INFO]", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelWarn, "[WARN]", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logf(levelError, "[ERROR]", msg, args...)
}
