package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/moffa90/go-fpgareg/protocol"
)

// ExitToken ends an interactive session.
const ExitToken = "EXIT"

// Transport is the part of channel.Channel the client needs.
type Transport interface {
	Write(ctx context.Context, p []byte) error
	ReadOne(ctx context.Context, timeout time.Duration) (b byte, ok bool, err error)
}

// Client sends register commands to the FPGA and decodes the answers.
//
// Client is not safe for concurrent use: every command must complete before
// the next one is sent.
type Client struct {
	device Transport
	config Config
}

// New creates a Client on an open transport.
//
// Example:
//
//	ch, err := channel.Open("/dev/ttyUSB0", channel.DefaultBaudRate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ch.Close()
//	client := console.New(ch, console.WithReadTimeout(time.Second))
func New(device Transport, opts ...Option) *Client {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		device: device,
		config: cfg,
	}
}

// Execute sends one invocation. For reads it waits up to the read timeout
// for the answer; a nil response with a nil error means nothing arrived.
// Writes always return a nil response.
func (c *Client) Execute(ctx context.Context, inv Invocation) (*protocol.Response, error) {
	if !inv.Command.IsRead() && !inv.HasData && c.config.StrictWrites {
		return nil, fmt.Errorf("%s: %w", inv.Command.Name, protocol.ErrMissingData)
	}

	frame, err := inv.Frame()
	if err != nil {
		return nil, err
	}

	if err := c.device.Write(ctx, frame.Bytes()); err != nil {
		return nil, fmt.Errorf("send %s: %w", inv.Command.Name, err)
	}

	c.logDebug("sent",
		"command", inv.Command.Name,
		"address", fmt.Sprintf("0x%02X", inv.Address),
		"frame", fmt.Sprintf("% X", frame.Bytes()),
	)

	if !inv.Command.IsRead() {
		return nil, nil
	}

	v, ok, err := c.device.ReadOne(ctx, c.config.ReadTimeout)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", inv.Command.Name, err)
	}
	if !ok {
		c.logDebug("no response", "command", inv.Command.Name, "timeout", c.config.ReadTimeout.String())
		return nil, nil
	}

	resp := protocol.DecodeResponse(inv.Command, v)
	return &resp, nil
}

// ExecuteLine parses line and executes it. Errors from ParseLine are returned
// unchanged, so callers can tell ErrIncomplete and protocol.ErrUnknownCommand
// apart from real failures.
func (c *Client) ExecuteLine(ctx context.Context, line string) (*protocol.Response, error) {
	inv, err := ParseLine(line)
	if err != nil {
		return nil, err
	}
	return c.Execute(ctx, inv)
}

// ReadRegister reads the part of register addr selected by g. ok is false
// when the device did not answer in time.
func (c *Client) ReadRegister(ctx context.Context, g protocol.Granularity, addr byte) (v byte, ok bool, err error) {
	cmd, err := protocol.CommandFor(g, protocol.Read)
	if err != nil {
		return 0, false, err
	}

	resp, err := c.Execute(ctx, Invocation{Command: cmd, Address: addr})
	if err != nil || resp == nil {
		return 0, false, err
	}
	return resp.Value, true, nil
}

// WriteRegister writes data to the part of register addr selected by g.
func (c *Client) WriteRegister(ctx context.Context, g protocol.Granularity, addr, data byte) error {
	cmd, err := protocol.CommandFor(g, protocol.Write)
	if err != nil {
		return err
	}

	_, err = c.Execute(ctx, Invocation{Command: cmd, Address: addr, Data: data, HasData: true})
	return err
}

// Run reads command lines from in until EXIT or end of input, executing each
// and printing read answers to out as "DATA = <v> / <binary>".
//
// Short lines and unknown commands are skipped without output. A malformed
// number is reported on out and the session continues. Transport failures
// end the session. Run returns ctx.Err() as soon as ctx is done, even while
// waiting for a line.
func (c *Client) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	done := make(chan struct{})
	defer close(done)
	lines, scanErr := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if c.config.Prompt != "" {
			fmt.Fprint(out, c.config.Prompt)
		}

		var raw string
		select {
		case <-ctx.Done():
			c.logInfo("session interrupted")
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				c.logInfo("end of input")
				return nil
			}
			raw = l
		}

		line := strings.TrimSpace(raw)
		if strings.EqualFold(line, ExitToken) {
			c.logInfo("session ended")
			return nil
		}

		resp, err := c.ExecuteLine(ctx, line)
		switch {
		case errors.Is(err, ErrIncomplete):
			continue
		case errors.Is(err, protocol.ErrUnknownCommand):
			c.logDebug("ignored line", "line", line)
			continue
		case protocol.IsParseError(err), errors.Is(err, protocol.ErrMissingData):
			c.logError("rejected line", "line", line, "error", err)
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		case err != nil:
			return err
		}

		if resp != nil {
			fmt.Fprintln(out, resp.String())
		}
	}
}

// readLines scans in on its own goroutine so a blocked read never delays
// cancellation. The goroutine stops at end of input or once done is closed;
// a read already blocked in in finishes when in is closed or yields data.
func readLines(in io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

func (c *Client) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (c *Client) logInfo(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, keysAndValues...)
	}
}

func (c *Client) logError(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Error(msg, keysAndValues...)
	}
}
