package protocol

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is returned when a phrase matches no table entry.
	ErrUnknownCommand = errors.New("protocol: unknown command")

	// ErrMissingData is returned when a write is requested without a data value
	// and the caller asked for strict writes.
	ErrMissingData = errors.New("protocol: write command without data")

	// ErrDataOnRead is returned when a data byte is attached to a read command.
	ErrDataOnRead = errors.New("protocol: read command cannot carry data")
)

// ParseError represents a malformed numeric literal in an address or data token.
type ParseError struct {
	// Token is the text that failed to parse
	Token string

	// Base is the base the token was parsed in (10 or 16)
	Base int

	// Err is the underlying strconv error
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid base-%d literal %q: %v", e.Base, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError returns true if err is or wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// UnknownOpcodeError is returned when decoding a frame whose first byte is not
// in the opcode table.
type UnknownOpcodeError struct {
	Opcode byte
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X", e.Opcode)
}

// OpcodeName returns the command name for an opcode, for log output.
func OpcodeName(op byte) string {
	if cmd, ok := LookupOpcode(op); ok {
		return cmd.Name
	}
	return fmt.Sprintf("unknown opcode 0x%02X", op)
}
