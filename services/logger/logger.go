package logger

import "log"

// Level defines log severity
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger defines the logging methods services depend on
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implements Logger on top of the standard log package
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger creates a DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+format, v...)
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf("[ERROR] "+format, v...)
	}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf("[DEBUG] "+format, v...)
	}
}
