package protocol

// Opcodes for the register-file commands. The opcode alone tells the device
// how many bytes follow it.
const (
	// OpReadFullWord reads a whole register byte
	OpReadFullWord = 0x10

	// OpWriteFullWord writes a whole register byte
	OpWriteFullWord = 0x11

	// OpReadLowNibble reads bits 0-3 of a register
	OpReadLowNibble = 0x12

	// OpWriteLowNibble writes bits 0-3 of a register
	OpWriteLowNibble = 0x13

	// OpReadHighNibble reads bits 4-7 of a register
	OpReadHighNibble = 0x14

	// OpWriteHighNibble writes bits 4-7 of a register
	OpWriteHighNibble = 0x15
)

// Frame sizes in bytes.
const (
	// ReadFrameSize is OPCODE(1) + ADDRESS(1)
	ReadFrameSize = 2

	// WriteFrameSize is OPCODE(1) + ADDRESS(1) + DATA(1)
	WriteFrameSize = 3

	// ReadResponseSize is the number of bytes the device answers a read with
	ReadResponseSize = 1
)

// Numeric literal handling for addresses and data values.
const (
	// HexPrefix marks a base-16 literal. Input is uppercased before parsing.
	HexPrefix = "0X"

	// ByteMask truncates parsed literals to 8 bits
	ByteMask = 0xFF

	// NibbleMask selects the low 4 bits of a byte
	NibbleMask = 0x0F

	// BitsPerNibble is the number of bits in a nibble
	BitsPerNibble = 4

	// BitsPerByte is the number of bits per byte
	BitsPerByte = 8
)

// NibbleSeparator joins the high and low nibble in full-byte binary output.
const NibbleSeparator = "_"
