package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/moffa90/go-fpgareg/console"
)

const prompt = "> "

func newConsoleCmd(a *app) *cobra.Command {
	var strictWrites bool

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Read register commands from stdin and send them to the device",
		Long: `Reads one command per line, for example:

  READ FULL WORD 0x10
  WRITE LOW NIBBLE 0x10 5
  WRITE HIGH NIBBLE 16 0XA

Read answers are printed as "DATA = <value> / <binary>".
Lines that do not name a command are ignored. EXIT ends the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strict-writes") {
				a.cfg.StrictWrites = strictWrites
			}

			ch, err := a.openChannel(registerDevice())
			if err != nil {
				return err
			}
			defer func() { _ = ch.Close() }()

			opts := append(a.cfg.ConsoleOptions(), console.WithLogger(a.log.Named("console")))
			if isTerminal(cmd) {
				opts = append(opts, console.WithPrompt(prompt))
			}

			err = console.New(ch, opts...).Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				// Ctrl-C ends the session like EXIT.
				return nil
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&strictWrites, "strict-writes", false, "reject write commands that have no data value")
	return cmd
}

func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
