package simulator

import (
	"bytes"
	"sync"
	"time"

	"github.com/moffa90/go-fpgareg/protocol"
)

// RegisterFile simulates the register-file FPGA design.
//
// It decodes the incoming byte stream with the device's own rule: the opcode
// fixes how many bytes follow. A write frame sent without its data byte
// therefore swallows the next byte on the wire as data, as the hardware does.
// Bytes that are not a known opcode while the device waits for one are
// dropped.
//
// RegisterFile implements channel.Port.
type RegisterFile struct {
	mu      sync.Mutex
	regs    [256]byte
	pending []byte
	out     bytes.Buffer
	frames  []protocol.Frame
	closed  bool
}

// NewRegisterFile returns a device with every register cleared.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{}
}

// Register returns the current value at addr.
func (d *RegisterFile) Register(addr byte) byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.regs[addr]
}

// SetRegister stores v at addr directly, bypassing the protocol.
func (d *RegisterFile) SetRegister(addr, v byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.regs[addr] = v
}

// Frames returns every frame the device has executed, oldest first.
func (d *RegisterFile) Frames() []protocol.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]protocol.Frame(nil), d.frames...)
}

// Write feeds bytes into the device's frame decoder.
func (d *RegisterFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, ErrClosed
	}

	for _, b := range p {
		if len(d.pending) == 0 && protocol.FrameLength(b) == 0 {
			continue
		}
		d.pending = append(d.pending, b)
		if len(d.pending) < protocol.FrameLength(d.pending[0]) {
			continue
		}

		frame, err := protocol.ParseFrame(d.pending)
		d.pending = d.pending[:0]
		if err != nil {
			continue
		}
		d.execute(frame)
	}
	return len(p), nil
}

func (d *RegisterFile) execute(f protocol.Frame) {
	d.frames = append(d.frames, f)
	reg := &d.regs[f.Address]

	switch f.Command.Opcode {
	case protocol.OpReadFullWord:
		d.out.WriteByte(*reg)
	case protocol.OpReadLowNibble:
		d.out.WriteByte(*reg & protocol.NibbleMask)
	case protocol.OpReadHighNibble:
		d.out.WriteByte(*reg >> protocol.BitsPerNibble)
	case protocol.OpWriteFullWord:
		*reg = f.Data
	case protocol.OpWriteLowNibble:
		*reg = *reg&^protocol.NibbleMask | f.Data&protocol.NibbleMask
	case protocol.OpWriteHighNibble:
		*reg = *reg&protocol.NibbleMask | (f.Data&protocol.NibbleMask)<<protocol.BitsPerNibble
	}
}

// Read returns queued response bytes. With nothing queued it returns (0, nil)
// at once, which the channel treats as a timeout.
func (d *RegisterFile) Read(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, ErrClosed
	}
	if d.out.Len() == 0 {
		return 0, nil
	}
	return d.out.Read(p)
}

// SetReadTimeout is a no-op; the simulator never blocks.
func (d *RegisterFile) SetReadTimeout(time.Duration) error {
	return nil
}

// Close marks the port closed. Further reads and writes fail.
func (d *RegisterFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}
