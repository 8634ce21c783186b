package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnv overrides the level chosen by New.
const LevelEnv = "FPGAREG_LOG_LEVEL"

// New builds the production zap logger the commands use. Output goes to
// stderr so it never mixes with register values or reports on stdout.
// verbose selects debug level; a valid LevelEnv value takes precedence.
func New(verbose bool) (*zap.Logger, error) {
	level, err := Level(verbose, os.Getenv(LevelEnv))
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Level resolves the logging level from the verbose flag and an optional
// level name such as "warn". An empty name leaves the flag in charge.
func Level(verbose bool, name string) (zapcore.Level, error) {
	if name = strings.TrimSpace(name); name != "" {
		level, err := zapcore.ParseLevel(name)
		if err != nil {
			return zapcore.InfoLevel, fmt.Errorf("%s: %w", LevelEnv, err)
		}
		return level, nil
	}
	if verbose {
		return zapcore.DebugLevel, nil
	}
	return zapcore.InfoLevel, nil
}

// Adapter exposes a zap logger through the Debug/Info/Error interface the
// channel, console and harness packages accept.
type Adapter struct {
	sugar *zap.SugaredLogger
}

// NewAdapter wraps logger. A nil logger discards everything.
func NewAdapter(logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{sugar: logger.Sugar()}
}

// Named returns an adapter whose entries carry name as the logger name.
func (a *Adapter) Named(name string) *Adapter {
	return &Adapter{sugar: a.sugar.Named(name)}
}

// Debug logs msg with alternating key-value pairs at debug level.
func (a *Adapter) Debug(msg string, keysAndValues ...interface{}) {
	a.sugar.Debugw(msg, keysAndValues...)
}

// Info logs at info level.
func (a *Adapter) Info(msg string, keysAndValues ...interface{}) {
	a.sugar.Infow(msg, keysAndValues...)
}

// Error logs at error level.
func (a *Adapter) Error(msg string, keysAndValues ...interface{}) {
	a.sugar.Errorw(msg, keysAndValues...)
}
