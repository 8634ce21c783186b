package protocol

import (
	"fmt"
	"math/bits"
)

// RotationMode is the 2-bit switch setting that selects the device's rotation.
type RotationMode string

// Rotation modes, named by the switch code that selects them.
const (
	// RotateLeft1 rotates left by one bit
	RotateLeft1 RotationMode = "00"

	// RotateLeft2 rotates left by two bits
	RotateLeft2 RotationMode = "01"

	// RotateRight1 rotates right by one bit
	RotateRight1 RotationMode = "10"

	// RotateRight2 rotates right by two bits
	RotateRight2 RotationMode = "11"
)

// RotationModes lists the recognised modes in switch order.
var RotationModes = [...]RotationMode{RotateLeft1, RotateLeft2, RotateRight1, RotateRight2}

// ParseRotationMode validates a switch code. Rotate itself treats unknown
// codes as the identity; configuration loading uses this to reject typos.
func ParseRotationMode(code string) (RotationMode, error) {
	m := RotationMode(code)
	if !m.Valid() {
		return "", fmt.Errorf("invalid rotation mode %q: want one of 00, 01, 10, 11", code)
	}
	return m, nil
}

// Valid reports whether m is one of the four recognised codes.
func (m RotationMode) Valid() bool {
	return m.Shift() != 0
}

// Shift returns the signed rotate-left distance for m: positive rotates
// left, negative rotates right, zero is the identity.
func (m RotationMode) Shift() int {
	switch m {
	case RotateLeft1:
		return 1
	case RotateLeft2:
		return 2
	case RotateRight1:
		return -1
	case RotateRight2:
		return -2
	default:
		return 0
	}
}

// Inverse returns the mode that undoes m. The identity is its own inverse.
func (m RotationMode) Inverse() RotationMode {
	switch m {
	case RotateLeft1:
		return RotateRight1
	case RotateLeft2:
		return RotateRight2
	case RotateRight1:
		return RotateLeft1
	case RotateRight2:
		return RotateLeft2
	default:
		return m
	}
}

func (m RotationMode) String() string {
	switch m {
	case RotateLeft1:
		return "00 (rotate left 1)"
	case RotateLeft2:
		return "01 (rotate left 2)"
	case RotateRight1:
		return "10 (rotate right 1)"
	case RotateRight2:
		return "11 (rotate right 2)"
	default:
		return fmt.Sprintf("%q (identity)", string(m))
	}
}

// Rotate applies the 8-bit circular rotation selected by m.
//
//	00: (b<<1 | b>>7) & 0xFF
//	01: (b<<2 | b>>6) & 0xFF
//	10: (b>>1) | ((b&0x01)<<7)
//	11: (b>>2) | ((b&0x03)<<6)
//
// Any other code returns b unchanged.
func Rotate(b byte, m RotationMode) byte {
	return bits.RotateLeft8(b, m.Shift())
}
