// Package protocol implements the register-file command protocol spoken by the
// FPGA and the rotation rule its verification unit applies.
//
// This package builds command frames, decodes read responses and computes the
// expected output of the bit-rotation unit. It does no I/O.
//
// # Protocol Overview
//
// Every command is two or three raw bytes with no delimiters or checksum:
//
//	Read:  [OPCODE][ADDRESS]
//	Write: [OPCODE][ADDRESS][DATA]
//
// The opcode alone tells the device how many bytes follow. A read is answered
// with exactly one byte; a write is not answered.
//
// # Opcode Table
//
//	READ FULL WORD     0x10
//	WRITE FULL WORD    0x11
//	READ LOW NIBBLE    0x12
//	WRITE LOW NIBBLE   0x13
//	READ HIGH NIBBLE   0x14
//	WRITE HIGH NIBBLE  0x15
//
// # Frame Builders
//
//	cmd, err := protocol.LookupName("WRITE LOW NIBBLE")
//	frame, err := protocol.BuildWriteFrame(cmd, 0x05, 0x03)
//	port.Write(frame.Bytes()) // 0x13 0x05 0x03
//
// # Responses
//
//	resp := protocol.DecodeResponse(cmd, b)
//	fmt.Println(resp) // DATA = 181 / 1011_0101
//
// # Rotation
//
// The verification unit rotates every byte it receives by a mode chosen with
// two switches. Rotate computes the expected output:
//
//	protocol.Rotate(0x81, protocol.RotateLeft1) // 0x03
package protocol
