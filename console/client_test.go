package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/moffa90/go-fpgareg/channel"
	"github.com/moffa90/go-fpgareg/protocol"
	"github.com/moffa90/go-fpgareg/simulator"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockTransport records every write and answers reads from a queue.
type MockTransport struct {
	writes   [][]byte
	answers  []byte
	timeouts []time.Duration
	writeErr error
	readErr  error
}

func (m *MockTransport) Write(_ context.Context, p []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes = append(m.writes, append([]byte(nil), p...))
	return nil
}

func (m *MockTransport) ReadOne(_ context.Context, timeout time.Duration) (byte, bool, error) {
	m.timeouts = append(m.timeouts, timeout)
	if m.readErr != nil {
		return 0, false, m.readErr
	}
	if len(m.answers) == 0 {
		return 0, false, nil
	}
	b := m.answers[0]
	m.answers = m.answers[1:]
	return b, true, nil
}

// MockLogger records messages by level.
type MockLogger struct {
	debugMsgs []string
	infoMsgs  []string
	errorMsgs []string
}

func (l *MockLogger) Debug(msg string, kv ...interface{}) { l.debugMsgs = append(l.debugMsgs, msg) }
func (l *MockLogger) Info(msg string, kv ...interface{})  { l.infoMsgs = append(l.infoMsgs, msg) }
func (l *MockLogger) Error(msg string, kv ...interface{}) { l.errorMsgs = append(l.errorMsgs, msg) }

func TestNew(t *testing.T) {
	assert.Panics(t, func() { New(nil) })

	client := New(&MockTransport{},
		WithLogger(&MockLogger{}),
		WithReadTimeout(250*time.Millisecond),
		WithStrictWrites(true),
		WithPrompt("> "),
	)
	assert.Equal(t, 250*time.Millisecond, client.config.ReadTimeout)
	assert.True(t, client.config.StrictWrites)
	assert.Equal(t, "> ", client.config.Prompt)

	// Non-positive timeouts keep the default.
	client = New(&MockTransport{}, WithReadTimeout(0))
	assert.Equal(t, DefaultReadTimeout, client.config.ReadTimeout)
}

func TestExecuteLineFrames(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		answer []byte
		want   [][]byte
		resp   string
	}{
		{
			name:   "read full word",
			line:   "READ FULL WORD 0X10",
			answer: []byte{181},
			want:   [][]byte{{0x10, 0x10}},
			resp:   "DATA = 181 / 1011_0101",
		},
		{
			name: "write low nibble",
			line: "WRITE LOW NIBBLE 5 3",
			want: [][]byte{{0x13, 0x05, 0x03}},
		},
		{
			name:   "read low nibble masks to four bits",
			line:   "READ LOW NIBBLE 5",
			answer: []byte{181},
			want:   [][]byte{{0x12, 0x05}},
			resp:   "DATA = 181 / 0101",
		},
		{
			name: "read with no answer",
			line: "READ HIGH NIBBLE 1",
			want: [][]byte{{0x14, 0x01}},
		},
		{
			name: "write without data sends short frame",
			line: "WRITE FULL WORD 9",
			want: [][]byte{{0x11, 0x09}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &MockTransport{answers: tt.answer}
			resp, err := New(dev).ExecuteLine(context.Background(), tt.line)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, dev.writes); diff != "" {
				t.Errorf("frames mismatch (-want +got):\n%s", diff)
			}
			if tt.resp == "" {
				assert.Nil(t, resp)
				return
			}
			require.NotNil(t, resp)
			assert.Equal(t, tt.resp, resp.String())
		})
	}
}

func TestExecuteLineUnknownSendsNothing(t *testing.T) {
	dev := &MockTransport{}
	resp, err := New(dev).ExecuteLine(context.Background(), "FOO BAR BAZ")
	assert.ErrorIs(t, err, protocol.ErrUnknownCommand)
	assert.Nil(t, resp)
	assert.Empty(t, dev.writes)
}

func TestExecuteUsesReadTimeout(t *testing.T) {
	dev := &MockTransport{answers: []byte{1}}
	_, err := New(dev, WithReadTimeout(300*time.Millisecond)).ExecuteLine(context.Background(), "READ FULL WORD 0")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{300 * time.Millisecond}, dev.timeouts)
}

func TestExecuteStrictWrites(t *testing.T) {
	dev := &MockTransport{}
	client := New(dev, WithStrictWrites(true))

	_, err := client.ExecuteLine(context.Background(), "WRITE FULL WORD 9")
	assert.ErrorIs(t, err, protocol.ErrMissingData)
	assert.Empty(t, dev.writes)

	_, err = client.ExecuteLine(context.Background(), "WRITE FULL WORD 9 1")
	require.NoError(t, err)
	assert.Len(t, dev.writes, 1)
}

func TestExecuteTransportErrors(t *testing.T) {
	boom := errors.New("unplugged")

	_, err := New(&MockTransport{writeErr: boom}).ExecuteLine(context.Background(), "WRITE FULL WORD 1 2")
	assert.ErrorIs(t, err, boom)

	_, err = New(&MockTransport{readErr: boom}).ExecuteLine(context.Background(), "READ FULL WORD 1")
	assert.ErrorIs(t, err, boom)
}

func TestRegisterHelpersAgainstSimulator(t *testing.T) {
	dev := simulator.NewRegisterFile()
	client := New(channel.New(dev))
	ctx := context.Background()

	require.NoError(t, client.WriteRegister(ctx, protocol.Full, 0x20, 0xB5))
	require.NoError(t, client.WriteRegister(ctx, protocol.HighNibble, 0x20, 0x3))

	v, ok, err := client.ReadRegister(ctx, protocol.Full, 0x20)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte(0x35), v)

	v, ok, err = client.ReadRegister(ctx, protocol.HighNibble, 0x20)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte(0x3), v)

	_, _, err = client.ReadRegister(ctx, protocol.Granularity(42), 0)
	assert.ErrorIs(t, err, protocol.ErrUnknownCommand)
}

func TestRunSession(t *testing.T) {
	dev := simulator.NewRegisterFile()
	logger := &MockLogger{}
	client := New(channel.New(dev), WithLogger(logger))

	input := strings.Join([]string{
		"write full word 0x10 181",
		"READ FULL WORD 0X10",
		"READ LOW NIBBLE 16",
		"",
		"READ",
		"FOO BAR BAZ",
		"READ FULL WORD 0XQQ",
		"WRITE HIGH NIBBLE 16 0XF",
		"READ HIGH NIBBLE 0X10",
		"exit",
		"READ FULL WORD 0X10",
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, client.Run(context.Background(), strings.NewReader(input), &out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4, "output: %q", out.String())
	assert.Equal(t, "DATA = 181 / 1011_0101", lines[0])
	assert.Equal(t, "DATA = 5 / 0101", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "error: address: invalid base-16 literal"), lines[2])
	assert.Equal(t, "DATA = 15 / 1111", lines[3])

	assert.Equal(t, byte(0xF5), dev.Register(0x10))
	assert.Len(t, dev.Frames(), 5, "EXIT must stop the session and unknown lines send nothing")
	assert.Contains(t, logger.debugMsgs, "ignored line")
	assert.Equal(t, []string{"rejected line"}, logger.errorMsgs)
	assert.Equal(t, []string{"session ended"}, logger.infoMsgs)
}

func TestRunPrompt(t *testing.T) {
	var out bytes.Buffer
	client := New(&MockTransport{}, WithPrompt("> "))
	require.NoError(t, client.Run(context.Background(), strings.NewReader("EXIT\n"), &out))
	assert.Equal(t, "> ", out.String())
}

func TestRunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	dev := &MockTransport{}
	require.NoError(t, New(dev).Run(context.Background(), strings.NewReader("WRITE FULL WORD 1 1"), &out))
	assert.Len(t, dev.writes, 1)
	assert.Empty(t, out.String())
}

func TestRunStopsOnTransportError(t *testing.T) {
	boom := errors.New("unplugged")
	dev := &MockTransport{writeErr: boom}
	err := New(dev).Run(context.Background(), strings.NewReader("READ FULL WORD 1\nEXIT\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, boom)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(&MockTransport{}).Run(ctx, strings.NewReader("READ FULL WORD 1\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCancelledWhileWaitingForInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	logger := &MockLogger{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- New(&MockTransport{}, WithLogger(logger)).Run(ctx, pr, &bytes.Buffer{})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run still blocked after cancel")
	}
	assert.Equal(t, []string{"session interrupted"}, logger.infoMsgs)
}

func TestRunInputError(t *testing.T) {
	pr, pw := io.Pipe()
	boom := errors.New("tty gone")
	go func() {
		_, _ = pw.Write([]byte("FOO BAR BAZ\n"))
		pw.CloseWithError(boom)
	}()

	err := New(&MockTransport{}).Run(context.Background(), pr, &bytes.Buffer{})
	assert.ErrorIs(t, err, boom)
}
