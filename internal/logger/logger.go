package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

// Output encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns the singleton logger with console output.
func Get(level string) *Logger {
	return Setup(level, FormatConsole)
}

// Setup returns a singleton logger configured with the provided level and format.
// The first call initializes the logger; subsequent calls ignore their arguments
// and return the already initialized instance.
func Setup(level, format string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level, format)
	})
	return globalLogger
}
