package console

// Logger is an optional logging interface that can be provided to the client.
// This allows integration with any logging framework.
//
// Example with zap:
//
//	zl, _ := zap.NewProduction()
//	client := console.New(ch, console.WithLogger(logging.NewAdapter(zl)))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
