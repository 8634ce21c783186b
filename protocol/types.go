package protocol

// Granularity is the part of a register a command addresses.
type Granularity int

const (
	// Full addresses all 8 bits
	Full Granularity = iota

	// LowNibble addresses bits 0-3
	LowNibble

	// HighNibble addresses bits 4-7
	HighNibble
)

// IsNibble reports whether g addresses half a register.
func (g Granularity) IsNibble() bool {
	return g == LowNibble || g == HighNibble
}

func (g Granularity) String() string {
	switch g {
	case Full:
		return "full"
	case LowNibble:
		return "low nibble"
	case HighNibble:
		return "high nibble"
	default:
		return "unknown"
	}
}

// Direction says whether a command reads from or writes to the device.
type Direction int

const (
	// Read commands are answered with exactly one byte
	Read Direction = iota

	// Write commands are not answered
	Write
)

func (d Direction) String() string {
	if d == Write {
		return "write"
	}
	return "read"
}

// Command describes one entry of the fixed opcode table.
type Command struct {
	// Name is the operator-facing phrase, e.g. "READ LOW NIBBLE"
	Name string

	// Opcode is the first byte of every frame for this command
	Opcode byte

	// Granularity is the part of the register addressed
	Granularity Granularity

	// Direction is read or write
	Direction Direction
}

// IsRead reports whether the device answers this command.
func (c Command) IsRead() bool {
	return c.Direction == Read
}

// Frame is one command as it goes over the wire.
//
//	[OPCODE][ADDRESS][DATA?]
type Frame struct {
	// Command is the table entry the opcode came from
	Command Command

	// Address is the register address
	Address byte

	// Data is the value written; meaningful only when HasData is set
	Data byte

	// HasData is true when a data byte follows the address
	HasData bool
}

// Response is a decoded answer to a read command.
type Response struct {
	// Value is the raw byte returned by the device
	Value byte

	// Binary is the binary rendering chosen by the command's granularity
	Binary string
}
