// Package simulator provides in-process models of the two FPGA designs the
// tools talk to, for tests and for running the CLI without hardware.
//
// RegisterFile answers the six register commands. Rotator rotates every byte
// it receives under a fixed switch setting. Both implement channel.Port and
// answer immediately, so a read with nothing queued behaves like a timeout.
//
//	dev := simulator.NewRotator(protocol.RotateRight2, simulator.WithLimit(40))
//	ch := channel.New(dev)
package simulator
