package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeResponse interprets the single byte returned for a read command.
//
// Nibble reads render only the low 4 bits, whichever nibble was requested:
// the device right-aligns the nibble before answering.
func DecodeResponse(cmd Command, v byte) Response {
	return Response{
		Value:  v,
		Binary: FormatBinary(v, cmd.Granularity),
	}
}

// String renders the response the way the console prints it:
//
//	DATA = 181 / 1011_0101
func (r Response) String() string {
	return fmt.Sprintf("DATA = %d / %s", r.Value, r.Binary)
}

// FormatBinary renders v as binary text.
//
// For nibble granularity the result is the 4-bit zero-padded binary of
// v & 0xF. For full granularity it is the 8-bit binary split as HHHH_LLLL.
func FormatBinary(v byte, g Granularity) string {
	if g.IsNibble() {
		return padBinary(uint64(v&NibbleMask), BitsPerNibble)
	}
	bits := ByteBinary(v)
	return bits[:BitsPerNibble] + NibbleSeparator + bits[BitsPerNibble:]
}

// ByteBinary renders v as 8 zero-padded binary digits.
func ByteBinary(v byte) string {
	return padBinary(uint64(v), BitsPerByte)
}

func padBinary(v uint64, width int) string {
	s := strconv.FormatUint(v, 2)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
