package core

// Logger is any service that can log messages at the usual levels.
// Implementations may fan messages out to an error tracker; extra args
// carry structured context (maps, errors, the acting user).
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
