package channel

import (
	"go.bug.st/serial"
)

// Framing used by the FPGA's UART.
const (
	// DataBits per character
	DataBits = 8

	// DefaultBaudRate matches the FPGA UART clock divider
	DefaultBaudRate = 115200
)

// Open opens the named serial port at baud, 8N1.
// A failure is returned as *OpenError.
func Open(name string, baud int, opts ...Option) (*Channel, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: DataBits,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, &OpenError{Port: name, BaudRate: baud, Err: err}
	}

	c := New(port, opts...)
	c.logDebug("port open", "port", name, "baud", baud)
	return c, nil
}
