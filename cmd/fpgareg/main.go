package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moffa90/go-fpgareg/config"
	"github.com/moffa90/go-fpgareg/logging"
)

// errVerifyFailed makes the process exit non-zero without printing usage.
var errVerifyFailed = errors.New("verification failed")

// app carries what the persistent flags resolve to.
type app struct {
	configPath string
	port       string
	baud       int
	verbose    bool
	simulate   bool

	cfg    config.Config
	logger *zap.Logger
	log    *logging.Adapter
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "fpgareg",
		Short: "Talk to the FPGA register file and rotation unit over a serial line",
		Long: `fpgareg drives an FPGA design over a UART.

  console  reads register commands from stdin and prints what the device answers
  verify   sends a burst of random bytes and checks the device's bit rotation

Settings come from --config (TOML or YAML), overlaid by flags.
Set FPGAREG_LOG_LEVEL to debug, info, warn or error to pick the log level.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "settings file (.toml, .yaml or .yml)")
	flags.StringVarP(&a.port, "port", "p", "", "serial port (default from config)")
	flags.IntVarP(&a.baud, "baud", "b", 0, "baud rate (default from config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.simulate, "simulate", false, "use the in-process FPGA simulator instead of a serial port")

	rootCmd.AddCommand(newConsoleCmd(a), newVerifyCmd(a))
	return rootCmd
}

// setup builds the logger and resolves settings: defaults, then the config
// file, then any flag the user set.
func (a *app) setup(cmd *cobra.Command) error {
	logger, err := logging.New(a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	a.log = logging.NewAdapter(logger)

	cfg := config.Default()
	if a.configPath != "" {
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
		a.log.Debug("config loaded", "path", a.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = a.port
	}
	if flags.Changed("baud") {
		cfg.BaudRate = a.baud
	}
	a.cfg = cfg
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		if !errors.Is(err, errVerifyFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
