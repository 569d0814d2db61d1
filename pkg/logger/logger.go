package logger

import (
	"log"
	"strings"
)

// Level is a log severity
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger is the leveled logger used by services, jobs and event publishers
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger writes through the standard log package
type DefaultLogger struct {
	level  Level
	prefix string
}

// New creates a DefaultLogger with a component prefix, e.g. "settlement"
func New(prefix string, level Level) *DefaultLogger {
	return &DefaultLogger{level: level, prefix: prefix}
}

// ParseLevel maps "debug", "info", "error" to a Level; anything else is InfoLevel
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+l.tag()+format, v...)
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf("[ERROR] "+l.tag()+format, v...)
	}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf("[DEBUG] "+l.tag()+format, v...)
	}
}

func (l *DefaultLogger) tag() string {
	if l.prefix == "" {
		return ""
	}
	return "[" + l.prefix + "] "
}

// Nop discards everything; handy in tests
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
func (Nop) Debug(string, ...interface{}) {}
