package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-fpgareg/harness"
	"github.com/moffa90/go-fpgareg/protocol"
)

func newVerifyCmd(a *app) *cobra.Command {
	var (
		mode     string
		samples  int
		seed     uint64
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the device's bit-rotation unit against random data",
		Long: `Sends a burst of random bytes, reads back the device's answer and scores
each byte against the rotation selected by --mode:

  00  rotate left 1
  01  rotate left 2
  10  rotate right 1
  11  rotate right 2

Exits with status 1 when any byte is wrong or missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("mode") {
				a.cfg.RotationMode = protocol.RotationMode(mode)
			}
			if flags.Changed("samples") {
				a.cfg.Samples = samples
			}
			if a.simulate {
				a.cfg.OpenSettle, a.cfg.WriteSettle = 0, 0
			}

			ch, err := a.openChannel(a.rotationDevice())
			if err != nil {
				return err
			}
			defer func() { _ = ch.Close() }()

			out := cmd.OutOrStdout()
			opts := append(a.cfg.HarnessOptions(), harness.WithLogger(a.log.Named("harness")))
			if flags.Changed("seed") {
				opts = append(opts, harness.WithRandomSource(rand.New(rand.NewPCG(seed, seed))))
			}
			if progress {
				opts = append(opts, harness.WithProgressCallback(func(p harness.Progress) {
					fmt.Fprintf(cmd.ErrOrStderr(), "[%s] sent %d, received %d/%d (%s)\n",
						p.Phase, p.Sent, p.Received, p.Samples, p.ElapsedTime.Round(time.Millisecond))
				}))
			}

			report, err := harness.New(ch, opts...).Run(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := report.WriteTo(out); err != nil {
				return err
			}

			if !report.Passed() {
				return errVerifyFailed
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&mode, "mode", "m", "", "rotation mode set on the device switches: 00, 01, 10 or 11 (default from config)")
	flags.IntVarP(&samples, "samples", "n", 0, "number of random bytes to send (default from config)")
	flags.Uint64Var(&seed, "seed", 0, "seed the byte generator for a reproducible run")
	flags.BoolVar(&progress, "progress", false, "print each phase of the run on stderr")
	return cmd
}
