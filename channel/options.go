package channel

// Logger is an optional logging interface. Any logger with these three
// methods works, including logging.Adapter.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Option is a functional option for configuring a Channel.
type Option func(*Channel)

// WithLogger traces every transmitted and received byte at debug level.
func WithLogger(logger Logger) Option {
	return func(c *Channel) {
		c.logger = logger
	}
}
