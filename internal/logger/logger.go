// Package logger wraps charmbracelet/log with the small leveled surface
// the rest of the module uses.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

var std = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "prehrajto",
})

// SetDebug toggles debug-level output.
func SetDebug(enabled bool) {
	if enabled {
		std.SetLevel(log.DebugLevel)
	} else {
		std.SetLevel(log.InfoLevel)
	}
}

// Debug logs a debug message with optional key/value pairs.
func Debug(msg string, keyvals ...interface{}) {
	std.Debug(msg, keyvals...)
}

// Info logs an informational message.
func Info(msg string, keyvals ...interface{}) {
	std.Info(msg, keyvals...)
}

// Warn logs a warning.
func Warn(msg string, keyvals ...interface{}) {
	std.Warn(msg, keyvals...)
}

// Error logs an error.
func Error(msg string, keyvals ...interface{}) {
	std.Error(msg, keyvals...)
}
