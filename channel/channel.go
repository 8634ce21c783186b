package channel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Port is the raw byte surface of a serial port. It matches the subset of
// go.bug.st/serial.Port the channel needs, so tests and the simulator can
// stand in for hardware.
//
// Read must return (0, nil) when the read timeout expires with no data.
type Port interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	SetReadTimeout(t time.Duration) error
	Close() error
}

// Channel is a byte-oriented duplex link with timeout-bounded reads.
// A timeout is never an error: it yields an empty or short result.
//
// Channel is not safe for concurrent use. Commands and responses must be
// strictly sequential.
type Channel struct {
	port   Port
	logger Logger
}

// New wraps an already-open port.
func New(port Port, opts ...Option) *Channel {
	if port == nil {
		panic("port cannot be nil")
	}

	c := &Channel{port: port}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Write sends all of p in order.
func (c *Channel) Write(ctx context.Context, p []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for written := 0; written < len(p); {
		n, err := c.port.Write(p[written:])
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("write: %w", io.ErrShortWrite)
		}
		written += n
	}

	c.logDebug("tx", "bytes", fmt.Sprintf("% X", p))
	return nil
}

// ReadOne waits up to timeout for a single byte. ok is false when nothing
// arrived in time.
func (c *Channel) ReadOne(ctx context.Context, timeout time.Duration) (b byte, ok bool, err error) {
	buf, err := c.ReadUpTo(ctx, 1, timeout)
	if err != nil || len(buf) == 0 {
		return 0, false, err
	}
	return buf[0], true, nil
}

// ReadUpTo reads until n bytes have arrived or timeout has elapsed, whichever
// comes first. The result never holds more than n bytes.
func (c *Channel) ReadUpTo(ctx context.Context, n int, timeout time.Duration) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	buf := make([]byte, n)
	got := 0
	deadline := time.Now().Add(timeout)

	for got < n {
		if err := ctx.Err(); err != nil {
			return buf[:got], err
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		if err := c.port.SetReadTimeout(remaining); err != nil {
			return buf[:got], fmt.Errorf("set read timeout: %w", err)
		}

		m, err := c.port.Read(buf[got:])
		got += m
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return buf[:got], fmt.Errorf("read: %w", err)
		}
		if m == 0 {
			// timed out
			break
		}
	}

	if got < n {
		c.logDebug("rx short", "want", n, "got", got, "timeout", timeout.String())
	}
	if got > 0 {
		c.logDebug("rx", "bytes", fmt.Sprintf("% X", buf[:got]))
	}
	return buf[:got], nil
}

// Close releases the port.
func (c *Channel) Close() error {
	return c.port.Close()
}

func (c *Channel) logDebug(msg string, keysAndValues ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, keysAndValues...)
	}
}
