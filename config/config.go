package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/moffa90/go-fpgareg/channel"
	"github.com/moffa90/go-fpgareg/console"
	"github.com/moffa90/go-fpgareg/harness"
	"github.com/moffa90/go-fpgareg/protocol"
)

// Config is everything the tools need to reach and exercise the device.
type Config struct {
	Port           string
	BaudRate       int
	RotationMode   protocol.RotationMode
	Samples        int
	OpenSettle     time.Duration
	WriteSettle    time.Duration
	ReadTimeout    time.Duration
	CommandTimeout time.Duration
	StrictWrites   bool
}

// Default returns the settings the FPGA designs were built for.
func Default() Config {
	return Config{
		Port:           defaultPort(),
		BaudRate:       channel.DefaultBaudRate,
		RotationMode:   protocol.RotateRight2,
		Samples:        harness.DefaultSamples,
		OpenSettle:     harness.DefaultOpenSettle,
		WriteSettle:    harness.DefaultWriteSettle,
		ReadTimeout:    harness.DefaultReadTimeout,
		CommandTimeout: console.DefaultReadTimeout,
	}
}

func defaultPort() string {
	if runtime.GOOS == "windows" {
		return "COM8"
	}
	return "/dev/ttyUSB0"
}

// fileConfig mirrors the on-disk keys. Pointers tell absent keys apart from
// zero values for YAML; TOML uses its metadata instead.
type fileConfig struct {
	Port           *string `toml:"port" yaml:"port"`
	Baud           *int    `toml:"baud" yaml:"baud"`
	RotationMode   *string `toml:"rotation_mode" yaml:"rotation_mode"`
	Samples        *int    `toml:"samples" yaml:"samples"`
	OpenSettle     *string `toml:"open_settle" yaml:"open_settle"`
	WriteSettle    *string `toml:"write_settle" yaml:"write_settle"`
	ReadTimeout    *string `toml:"read_timeout" yaml:"read_timeout"`
	CommandTimeout *string `toml:"command_timeout" yaml:"command_timeout"`
	StrictWrites   *bool   `toml:"strict_writes" yaml:"strict_writes"`
}

// Load reads path over the defaults. The format follows the extension:
// .toml, or .yaml/.yml. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	var raw fileConfig

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		defer func() { _ = f.Close() }()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("load config: unsupported format %q (want .toml, .yaml or .yml)", ext)
	}

	cfg := Default()
	if err := raw.apply(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (raw fileConfig) apply(cfg *Config) error {
	if raw.Port != nil {
		cfg.Port = strings.TrimSpace(*raw.Port)
	}
	if raw.Baud != nil {
		cfg.BaudRate = *raw.Baud
	}
	if raw.RotationMode != nil {
		cfg.RotationMode = protocol.RotationMode(strings.TrimSpace(*raw.RotationMode))
	}
	if raw.Samples != nil {
		cfg.Samples = *raw.Samples
	}
	if raw.StrictWrites != nil {
		cfg.StrictWrites = *raw.StrictWrites
	}

	durations := []struct {
		key string
		src *string
		dst *time.Duration
	}{
		{"open_settle", raw.OpenSettle, &cfg.OpenSettle},
		{"write_settle", raw.WriteSettle, &cfg.WriteSettle},
		{"read_timeout", raw.ReadTimeout, &cfg.ReadTimeout},
		{"command_timeout", raw.CommandTimeout, &cfg.CommandTimeout},
	}
	for _, d := range durations {
		if d.src == nil {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(*d.src))
		if err != nil {
			return fmt.Errorf("parse %s: %w", d.key, err)
		}
		*d.dst = v
	}
	return nil
}

// Validate rejects settings the tools cannot run with.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: port is empty")
	}
	if c.BaudRate <= 0 {
		return fmt.Errorf("config: baud must be positive, got %d", c.BaudRate)
	}
	if _, err := protocol.ParseRotationMode(string(c.RotationMode)); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("config: samples must be positive, got %d", c.Samples)
	}
	if c.OpenSettle < 0 || c.WriteSettle < 0 {
		return errors.New("config: settle delays cannot be negative")
	}
	if c.ReadTimeout <= 0 || c.CommandTimeout <= 0 {
		return errors.New("config: timeouts must be positive")
	}
	return nil
}

// ConsoleOptions returns the client options these settings imply.
func (c Config) ConsoleOptions() []console.Option {
	return []console.Option{
		console.WithReadTimeout(c.CommandTimeout),
		console.WithStrictWrites(c.StrictWrites),
	}
}

// HarnessOptions returns the harness options these settings imply.
func (c Config) HarnessOptions() []harness.Option {
	return []harness.Option{
		harness.WithMode(c.RotationMode),
		harness.WithSamples(c.Samples),
		harness.WithOpenSettle(c.OpenSettle),
		harness.WithWriteSettle(c.WriteSettle),
		harness.WithReadTimeout(c.ReadTimeout),
	}
}
