package harness

import (
	"time"

	"github.com/moffa90/go-fpgareg/protocol"
)

// Defaults match the timing the FPGA design needs at 115200 baud.
const (
	// DefaultSamples is the number of random bytes sent per run
	DefaultSamples = 50

	// DefaultOpenSettle lets the device come out of reset after the port opens
	DefaultOpenSettle = time.Second

	// DefaultWriteSettle lets the device finish rotating the burst
	DefaultWriteSettle = 500 * time.Millisecond

	// DefaultReadTimeout bounds the wait for the rotated burst
	DefaultReadTimeout = 5 * time.Second
)

// Config holds the harness configuration. It is fixed once New returns.
type Config struct {
	// Mode is the rotation the device's switches are set to (default "11")
	Mode protocol.RotationMode

	// Samples is the number of bytes sent and expected back
	Samples int

	// OpenSettle is waited once at the start of Run
	OpenSettle time.Duration

	// WriteSettle is waited between sending the burst and reading it back
	WriteSettle time.Duration

	// ReadTimeout bounds the read of the rotated burst
	ReadTimeout time.Duration

	// Random supplies the test bytes
	Random RandomSource

	// ProgressCallback is called at each phase (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger
}

func defaultConfig() Config {
	return Config{
		Mode:        protocol.RotateRight2,
		Samples:     DefaultSamples,
		OpenSettle:  DefaultOpenSettle,
		WriteSettle: DefaultWriteSettle,
		ReadTimeout: DefaultReadTimeout,
	}
}

// Option is a functional option for configuring the Harness.
type Option func(*Config)

// WithMode sets the rotation the device is expected to apply.
//
// Example:
//
//	h := harness.New(ch, harness.WithMode(protocol.RotateRight2))
func WithMode(mode protocol.RotationMode) Option {
	return func(c *Config) {
		c.Mode = mode
	}
}

// WithSamples sets the number of bytes per run. Non-positive values are
// ignored.
func WithSamples(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Samples = n
		}
	}
}

// WithOpenSettle sets the delay applied once before the first write.
func WithOpenSettle(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.OpenSettle = d
		}
	}
}

// WithWriteSettle sets the delay between the burst write and the read.
func WithWriteSettle(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.WriteSettle = d
		}
	}
}

// WithReadTimeout bounds the read of the rotated burst.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ReadTimeout = d
		}
	}
}

// WithRandomSource sets the source of test bytes. Use a seeded source to make
// runs reproducible.
//
// Example:
//
//	h := harness.New(ch, harness.WithRandomSource(rand.New(rand.NewPCG(1, 2))))
func WithRandomSource(src RandomSource) Option {
	return func(c *Config) {
		c.Random = src
	}
}

// WithProgressCallback sets a callback that is told about each phase of a run.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for harness operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
