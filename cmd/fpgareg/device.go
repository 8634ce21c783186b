package main

import (
	"fmt"

	"github.com/moffa90/go-fpgareg/channel"
	"github.com/moffa90/go-fpgareg/simulator"
)

// openChannel opens the configured serial port, or wraps sim when
// --simulate is set.
func (a *app) openChannel(sim channel.Port) (*channel.Channel, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []channel.Option{channel.WithLogger(a.log.Named("channel"))}

	if a.simulate {
		a.log.Info("using simulator", "device", fmt.Sprintf("%T", sim))
		return channel.New(sim, opts...), nil
	}

	ch, err := channel.Open(a.cfg.Port, a.cfg.BaudRate, opts...)
	if err != nil {
		a.log.Error("cannot open serial port", "port", a.cfg.Port, "baud", a.cfg.BaudRate, "error", err)
		return nil, fmt.Errorf("%w (check the cable and that no other program holds the port)", err)
	}
	a.log.Info("port open", "port", a.cfg.Port, "baud", a.cfg.BaudRate)
	return ch, nil
}

// registerDevice and rotationDevice are the simulators behind --simulate.
func registerDevice() channel.Port {
	return simulator.NewRegisterFile()
}

func (a *app) rotationDevice() channel.Port {
	return simulator.NewRotator(a.cfg.RotationMode)
}
