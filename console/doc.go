// Package console is the interactive command interpreter for the FPGA
// register file.
//
// # Command Lines
//
// Each line names a command, an address and, for writes, a data value:
//
//	READ FULL WORD 0X10
//	WRITE FULL WORD 0X10 255
//	READ LOW NIBBLE 5
//	WRITE HIGH NIBBLE 5 0XA
//
// Input is case-insensitive. Numbers are decimal or 0X-prefixed hex and wrap
// to 8 bits. The line EXIT ends the session.
//
// # Output
//
// Read commands print the answer in decimal and binary:
//
//	DATA = 181 / 1011_0101
//	DATA = 5 / 0101
//
// Nothing is printed when the device does not answer within the read timeout,
// for lines with fewer than three tokens, or for unknown commands.
//
// # Usage
//
//	ch, err := channel.Open("/dev/ttyUSB0", channel.DefaultBaudRate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ch.Close()
//
//	client := console.New(ch, console.WithPrompt("> "))
//	if err := client.Run(ctx, os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package console
