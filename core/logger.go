package core

// Logger is any service that can log application events.
// args may hold errors, map[string]interface{} of extra fields, or domain values.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
