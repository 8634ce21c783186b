package console

import "time"

// DefaultReadTimeout bounds the wait for the answer to a read command.
const DefaultReadTimeout = time.Second

// Config holds the client configuration.
type Config struct {
	// Logger is used for logging operations (optional)
	Logger Logger

	// ReadTimeout is how long a read command waits for its answer
	ReadTimeout time.Duration

	// StrictWrites rejects write lines that have no data token instead of
	// sending the two-byte short form
	StrictWrites bool

	// Prompt is printed before each line is read (optional)
	Prompt string
}

func defaultConfig() Config {
	return Config{
		ReadTimeout: DefaultReadTimeout,
	}
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithLogger sets a logger for client operations.
//
// Example:
//
//	client := console.New(ch, console.WithLogger(logging.NewAdapter(zl)))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithReadTimeout sets how long a read command waits for its answer.
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ReadTimeout = timeout
		}
	}
}

// WithStrictWrites makes a write line without a data token fail with
// protocol.ErrMissingData. By default such lines are sent as a two-byte
// frame, and the device takes the next byte it sees as the data.
func WithStrictWrites(strict bool) Option {
	return func(c *Config) {
		c.StrictWrites = strict
	}
}

// WithPrompt prints prompt before each line is read.
func WithPrompt(prompt string) Option {
	return func(c *Config) {
		c.Prompt = prompt
	}
}
