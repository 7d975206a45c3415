package logging

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	// LevelError only logs errors
	LevelError LogLevel = iota
	// LevelWarn logs warnings and errors
	LevelWarn
	// LevelInfo logs general information, warnings and errors
	LevelInfo
	// LevelDebug logs detailed debug information and all above
	LevelDebug
	// LevelTrace logs very detailed trace information and all above
	LevelTrace
)

var levelNames = map[LogLevel]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

// String returns the upper-case name of the level.
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel converts a level name (case-insensitive) into a LogLevel.
func ParseLevel(name string) (LogLevel, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for level, levelName := range levelNames {
		if levelName == upper {
			return level, true
		}
	}
	return LevelInfo, false
}

// levelState is shared between a logger and everything derived from it
// with WithPrefix, so SetLevel on the root affects all prefixed loggers.
type levelState struct {
	mu    sync.RWMutex
	level LogLevel
}

// Logger provides structured logging capabilities
type Logger struct {
	state  *levelState
	prefix string
	sugar  *zap.SugaredLogger
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// GetLogger returns the default logger instance
func GetLogger() *Logger {
	once.Do(func() {
		defaultLogger = NewLogger("SANDBOX")

		// Set initial log level from environment
		if name := os.Getenv("LOG_LEVEL"); name != "" {
			if level, ok := ParseLevel(name); ok {
				defaultLogger.SetLevel(level)
			}
		}
	})
	return defaultLogger
}

// NewLogger creates a new logger with the given prefix writing to stderr,
// keeping stdout free for command output.
func NewLogger(prefix string) *Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	if os.Getenv("LOG_LONGFILE") != "" {
		encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		zapcore.DebugLevel,
	)
	return NewLoggerWithCore(prefix, core)
}

// NewLoggerWithCore creates a logger on top of an arbitrary zap core.
// The core must accept DebugLevel; filtering happens in Logger itself so
// that the extra TRACE level can be honoured.
func NewLoggerWithCore(prefix string, core zapcore.Core) *Logger {
	base := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2))
	return &Logger{
		state:  &levelState{level: LevelInfo}, // Default to INFO level
		prefix: prefix,
		sugar:  base.Named(prefix).Sugar(),
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	l.state.level = level
}

// Level returns the current logging level
func (l *Logger) Level() LogLevel {
	l.state.mu.RLock()
	defer l.state.mu.RUnlock()
	return l.state.level
}

// Prefix returns the logger's prefix.
func (l *Logger) Prefix() string {
	return l.prefix
}

// shouldLog determines if a message at the given level should be logged
func (l *Logger) shouldLog(level LogLevel) bool {
	return level <= l.Level()
}

// log performs the actual logging
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	switch level {
	case LevelError:
		l.sugar.Errorf(format, args...)
	case LevelWarn:
		l.sugar.Warnf(format, args...)
	case LevelInfo:
		l.sugar.Infof(format, args...)
	default:
		// zap has no trace level; trace is debug output gated by our own level.
		l.sugar.Debugf(format, args...)
	}
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LevelError, format, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LevelWarn, format, args...)
}

// Info logs an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LevelInfo, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LevelDebug, format, args...)
}

// Trace logs a trace message
func (l *Logger) Trace(format string, args ...interface{}) {
	l.log(LevelTrace, format, args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// WithPrefix creates a new logger with an additional prefix. The new logger
// shares the level of its parent.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{
		state:  l.state,
		prefix: prefix,
		sugar:  l.sugar.Named(prefix),
	}
}
