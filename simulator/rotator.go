package simulator

import (
	"bytes"
	"sync"
	"time"

	"github.com/moffa90/go-fpgareg/protocol"
)

// Rotator simulates the bit-rotation FPGA design: every byte written is
// rotated under the switch setting and queued for reading.
//
// Rotator implements channel.Port.
type Rotator struct {
	mu      sync.Mutex
	mode    protocol.RotationMode
	limit   int
	corrupt map[int]byte
	seen    int
	out     bytes.Buffer
	closed  bool
}

// RotatorOption configures a Rotator.
type RotatorOption func(*Rotator)

// WithLimit makes the device answer only the first n bytes it receives, to
// model a device that is still busy when the host stops reading.
func WithLimit(n int) RotatorOption {
	return func(r *Rotator) {
		if n >= 0 {
			r.limit = n
		}
	}
}

// WithCorruption replaces the answer to the byte at index i (0-based, counted
// over the device's lifetime) with v.
func WithCorruption(i int, v byte) RotatorOption {
	return func(r *Rotator) {
		r.corrupt[i] = v
	}
}

// NewRotator returns a device whose switches are set to mode. An
// unrecognised mode makes the device echo its input.
func NewRotator(mode protocol.RotationMode, opts ...RotatorOption) *Rotator {
	r := &Rotator{
		mode:    mode,
		limit:   -1,
		corrupt: make(map[int]byte),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Write rotates each byte and queues the result.
func (r *Rotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrClosed
	}

	for _, b := range p {
		i := r.seen
		r.seen++
		if r.limit >= 0 && i >= r.limit {
			continue
		}
		if v, ok := r.corrupt[i]; ok {
			r.out.WriteByte(v)
			continue
		}
		r.out.WriteByte(protocol.Rotate(b, r.mode))
	}
	return len(p), nil
}

// Read returns queued bytes, or (0, nil) when none are queued.
func (r *Rotator) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrClosed
	}
	if r.out.Len() == 0 {
		return 0, nil
	}
	return r.out.Read(p)
}

// SetReadTimeout is a no-op; the simulator never blocks.
func (r *Rotator) SetReadTimeout(time.Duration) error {
	return nil
}

// Close marks the port closed.
func (r *Rotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
