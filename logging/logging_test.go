package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/moffa90/go-fpgareg/channel"
	"github.com/moffa90/go-fpgareg/console"
	"github.com/moffa90/go-fpgareg/harness"
)

var (
	_ channel.Logger = (*Adapter)(nil)
	_ console.Logger = (*Adapter)(nil)
	_ harness.Logger = (*Adapter)(nil)
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		env     string
		want    zapcore.Level
		wantErr bool
	}{
		{"default", false, "", zapcore.InfoLevel, false},
		{"verbose", true, "", zapcore.DebugLevel, false},
		{"env wins over verbose", true, "warn", zapcore.WarnLevel, false},
		{"env upper case", false, "ERROR", zapcore.ErrorLevel, false},
		{"env padded", false, " debug ", zapcore.DebugLevel, false},
		{"env invalid", false, "chatty", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Level(tt.verbose, tt.env)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), LevelEnv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Setenv(LevelEnv, "")
	zl, err := New(true)
	require.NoError(t, err)
	assert.True(t, zl.Core().Enabled(zapcore.DebugLevel))

	t.Setenv(LevelEnv, "error")
	zl, err = New(true)
	require.NoError(t, err)
	assert.False(t, zl.Core().Enabled(zapcore.InfoLevel))

	t.Setenv(LevelEnv, "bogus")
	_, err = New(false)
	assert.Error(t, err)
}

func TestAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := NewAdapter(zap.New(core)).Named("console")

	a.Debug("tx", "bytes", 2)
	a.Info("session ended")
	a.Error("short read", "want", 50, "got", 30)

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "tx", entries[0].Message)
	assert.Equal(t, int64(2), entries[0].ContextMap()["bytes"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "console", entries[1].LoggerName)

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, map[string]interface{}{"want": int64(50), "got": int64(30)}, entries[2].ContextMap())
}

func TestNewAdapterNil(t *testing.T) {
	assert.NotPanics(t, func() {
		NewAdapter(nil).Info("dropped")
	})
}
