package standin

import (
	"sandboxenv/internal/capability"
	"sandboxenv/internal/event"
	"sandboxenv/internal/logging"
)

// Logger is the log service, writing through the process logger.
type Logger struct {
	logger        *logging.Logger
	onLevelChange *event.Emitter[logging.LogLevel]
}

var _ capability.Logger = (*Logger)(nil)

// NewLogger wraps base.
func NewLogger(base *logging.Logger) *Logger {
	return &Logger{
		logger:        base.WithPrefix("console"),
		onLevelChange: event.NewEmitter[logging.LogLevel](),
	}
}

func (l *Logger) Trace(format string, args ...any) { l.logger.Trace(format, args...) }
func (l *Logger) Debug(format string, args ...any) { l.logger.Debug(format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logger.Info(format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logger.Warn(format, args...) }
func (l *Logger) Error(format string, args ...any) { l.logger.Error(format, args...) }

// Level returns the current level.
func (l *Logger) Level() logging.LogLevel {
	return l.logger.Level()
}

// SetLevel changes the level and notifies listeners when it differs.
func (l *Logger) SetLevel(level logging.LogLevel) {
	if l.logger.Level() == level {
		return
	}
	l.logger.SetLevel(level)
	l.onLevelChange.Fire(level)
}

// OnDidChangeLogLevel fires after SetLevel changed the level.
func (l *Logger) OnDidChangeLogLevel() event.Event[logging.LogLevel] {
	return l.onLevelChange
}

// Flush syncs the underlying logger.
func (l *Logger) Flush() error {
	return l.logger.Sync()
}
