// Package harness verifies the FPGA's bit-rotation unit.
//
// # Overview
//
// A run sends a burst of random bytes, reads back what the device returns and
// checks each byte against protocol.Rotate under the mode the device's
// switches are set to:
//
//	h := harness.New(ch, harness.WithMode(protocol.RotateRight2))
//	report, err := h.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.WriteTo(os.Stdout)
//	fmt.Println(report.Summary()) // "50/50"
//
// # Scoring
//
// Index i is OK when the i-th received byte equals the rotation of the i-th
// sent byte. When the device returns fewer bytes than were sent, every index
// past the end of the read is an error. Score can be used on its own to
// re-score captured data.
//
// # Reproducible Runs
//
// Inject a seeded source to send the same bytes every time:
//
//	h := harness.New(ch, harness.WithRandomSource(rand.New(rand.NewPCG(1, 2))))
package harness
