package capability

import (
	"sandboxenv/internal/event"
	"sandboxenv/internal/logging"
)

// Logger is the application-wide log service.
type Logger interface {
	Trace(format string, args ...any)
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Level() logging.LogLevel
	SetLevel(level logging.LogLevel)
	OnDidChangeLogLevel() event.Event[logging.LogLevel]
	Flush() error
}
