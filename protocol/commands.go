package protocol

import "fmt"

// Commands is the complete opcode table, ordered by opcode.
var Commands = [...]Command{
	{Name: "READ FULL WORD", Opcode: OpReadFullWord, Granularity: Full, Direction: Read},
	{Name: "WRITE FULL WORD", Opcode: OpWriteFullWord, Granularity: Full, Direction: Write},
	{Name: "READ LOW NIBBLE", Opcode: OpReadLowNibble, Granularity: LowNibble, Direction: Read},
	{Name: "WRITE LOW NIBBLE", Opcode: OpWriteLowNibble, Granularity: LowNibble, Direction: Write},
	{Name: "READ HIGH NIBBLE", Opcode: OpReadHighNibble, Granularity: HighNibble, Direction: Read},
	{Name: "WRITE HIGH NIBBLE", Opcode: OpWriteHighNibble, Granularity: HighNibble, Direction: Write},
}

// LookupOpcode returns the table entry for op.
func LookupOpcode(op byte) (Command, bool) {
	for _, cmd := range Commands {
		if cmd.Opcode == op {
			return cmd, true
		}
	}
	return Command{}, false
}

// LookupName returns the table entry whose name is exactly name.
// Names are uppercase with single spaces.
func LookupName(name string) (Command, error) {
	for _, cmd := range Commands {
		if cmd.Name == name {
			return cmd, nil
		}
	}
	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// CommandFor returns the table entry addressing g in direction d.
func CommandFor(g Granularity, d Direction) (Command, error) {
	for _, cmd := range Commands {
		if cmd.Granularity == g && cmd.Direction == d {
			return cmd, nil
		}
	}
	return Command{}, fmt.Errorf("%w: %s %s", ErrUnknownCommand, d, g)
}

// FrameLength returns the number of bytes a device consumes for a frame that
// starts with op, or 0 if op is not in the table.
func FrameLength(op byte) int {
	cmd, ok := LookupOpcode(op)
	if !ok {
		return 0
	}
	if cmd.IsRead() {
		return ReadFrameSize
	}
	return WriteFrameSize
}

// BuildFrame constructs a frame without a data byte.
// For write commands this yields the short two-byte form, which the device
// completes with whatever byte arrives next.
//
// Frame structure:
//
//	[OPCODE][ADDRESS]
func BuildFrame(cmd Command, address byte) (Frame, error) {
	if _, ok := LookupOpcode(cmd.Opcode); !ok {
		return Frame{}, &UnknownOpcodeError{Opcode: cmd.Opcode}
	}
	return Frame{Command: cmd, Address: address}, nil
}

// BuildWriteFrame constructs a complete write frame.
//
// Frame structure:
//
//	[OPCODE][ADDRESS][DATA]
func BuildWriteFrame(cmd Command, address, data byte) (Frame, error) {
	f, err := BuildFrame(cmd, address)
	if err != nil {
		return Frame{}, err
	}
	if cmd.IsRead() {
		return Frame{}, fmt.Errorf("%s: %w", cmd.Name, ErrDataOnRead)
	}
	f.Data = data
	f.HasData = true
	return f, nil
}

// Bytes renders the frame in wire order.
func (f Frame) Bytes() []byte {
	if f.HasData {
		return []byte{f.Command.Opcode, f.Address, f.Data}
	}
	return []byte{f.Command.Opcode, f.Address}
}

// ParseFrame decodes a complete frame. The slice must be exactly the length
// the opcode announces.
func ParseFrame(b []byte) (Frame, error) {
	if len(b) == 0 {
		return Frame{}, fmt.Errorf("frame too short: got 0 bytes, minimum is %d", ReadFrameSize)
	}

	cmd, ok := LookupOpcode(b[0])
	if !ok {
		return Frame{}, &UnknownOpcodeError{Opcode: b[0]}
	}

	want := FrameLength(b[0])
	if len(b) != want {
		return Frame{}, fmt.Errorf("frame length mismatch for %s: got %d bytes, expected %d", cmd.Name, len(b), want)
	}

	f := Frame{Command: cmd, Address: b[1]}
	if want == WriteFrameSize {
		f.Data = b[2]
		f.HasData = true
	}
	return f, nil
}
