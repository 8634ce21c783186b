// Package channel is the byte link between the host and the FPGA.
//
// A Channel wraps a Port (a real serial port from go.bug.st/serial, or the
// in-process simulator) and gives it the two read shapes the tools need:
//
//	b, ok, err := ch.ReadOne(ctx, time.Second)     // one optional byte
//	buf, err := ch.ReadUpTo(ctx, 50, 5*time.Second) // partial buffer
//
// Running out of time is not an error. ReadOne reports ok == false and
// ReadUpTo returns whatever arrived.
//
// Open the port once per process and close it on every exit path:
//
//	ch, err := channel.Open("/dev/ttyUSB0", channel.DefaultBaudRate)
//	if err != nil {
//	    log.Fatal(err) // *channel.OpenError
//	}
//	defer ch.Close()
package channel
