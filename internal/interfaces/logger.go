package interfaces

// Logger is the structured logger used across the service.
// keyvals are alternating key/value pairs; non-string keys are skipped.
type Logger interface {
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
	Debug(msg string, keyvals ...any)
	SetLevel(level string)
	WithContext(fields map[string]any) Logger
}
