package logging

import "context"

// ANSI color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

// Level represents log levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Fields represents structured logging fields
type Fields map[string]any

// Logger defines the interface that the library expects for logging.
// Components take a Logger explicitly; the package-level default exists
// for callers that don't care to wire one.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields
	WithFields(fields Fields) Logger

	// WithContext returns a logger that can extract fields from context
	WithContext(ctx context.Context) Logger

	// SetLevel sets the minimum log level
	SetLevel(level Level)
}

var defaultLogger Logger = NewDefaultLogger()

// SetDefault sets the package-level logger instance
func SetDefault(logger Logger) {
	if logger == nil {
		defaultLogger = &NoOpLogger{}
	} else {
		defaultLogger = logger
	}
}

// Default returns the current package-level logger
func Default() Logger {
	return defaultLogger
}

// Package-level logging functions that use the default logger
func Debug(msg string, fields ...Fields) {
	defaultLogger.Debug(msg, fields...)
}

func Info(msg string, fields ...Fields) {
	defaultLogger.Info(msg, fields...)
}

func Warn(msg string, fields ...Fields) {
	defaultLogger.Warn(msg, fields...)
}

func Error(err error, msg string, fields ...Fields) {
	defaultLogger.Error(err, msg, fields...)
}

func WithFields(fields Fields) Logger {
	return defaultLogger.WithFields(fields)
}

func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
}
