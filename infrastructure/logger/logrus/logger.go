// ABOUTME: Logrus-backed implementation of the core Logger interface
// ABOUTME: Supports plain-text and JSON output with a configurable level

package logrus

import (
	"github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface using logrus
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a logrus-backed logger. Unknown levels fall back to
// info; jsonFormat switches the output to the JSON formatter.
func NewLogger(level string, jsonFormat bool) *Logger {
	log := logrus.New()

	if jsonFormat {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return &Logger{log: log}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry(fields).Error(msg)
}

// entry attaches structured fields when present
func (l *Logger) entry(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.log)
	}
	return l.log.WithFields(logrus.Fields(fields))
}
