package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Transport is the part of channel.Channel the harness needs.
type Transport interface {
	Write(ctx context.Context, p []byte) error
	ReadUpTo(ctx context.Context, n int, timeout time.Duration) ([]byte, error)
}

// Harness drives verification runs against the rotation FPGA design.
//
// Harness is not safe for concurrent use.
type Harness struct {
	device Transport
	config Config
}

// New creates a Harness on an open transport.
//
// Example:
//
//	h := harness.New(ch,
//	    harness.WithMode(protocol.RotateRight2),
//	    harness.WithRandomSource(rand.New(rand.NewPCG(1, 2))),
//	)
//	report, err := h.Run(ctx)
func New(device Transport, opts ...Option) *Harness {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Random == nil {
		cfg.Random = globalSource{}
	}

	return &Harness{
		device: device,
		config: cfg,
	}
}

// Config returns the configuration the harness was built with.
func (h *Harness) Config() Config {
	return h.config
}

// Run performs one verification run:
//  1. Wait the open settle delay
//  2. Generate Samples random bytes
//  3. Send them as one block
//  4. Wait the write settle delay
//  5. Read up to Samples bytes within the read timeout
//  6. Score every index against the rotation oracle
//
// A short read is not an error: the missing indices are scored as errors.
// The harness never retries.
func (h *Harness) Run(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	start := time.Now()
	n := h.config.Samples

	progress := func(phase string, sent, received int) {
		h.reportProgress(Progress{
			RunID:       runID,
			Phase:       phase,
			Sent:        sent,
			Received:    received,
			Samples:     n,
			ElapsedTime: time.Since(start),
		})
	}

	h.logInfo("run started", "run_id", runID, "mode", string(h.config.Mode), "samples", n)

	progress(PhaseSettling, 0, 0)
	if err := sleep(ctx, h.config.OpenSettle); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	progress(PhaseGenerating, 0, 0)
	sent := RandomBytes(h.config.Random, n)

	progress(PhaseTransmitting, 0, 0)
	if err := h.device.Write(ctx, sent); err != nil {
		return nil, fmt.Errorf("send samples: %w", err)
	}

	progress(PhaseWaiting, n, 0)
	if err := sleep(ctx, h.config.WriteSettle); err != nil {
		return nil, fmt.Errorf("cancelled: %w", err)
	}

	progress(PhaseReceiving, n, 0)
	received, err := h.device.ReadUpTo(ctx, n, h.config.ReadTimeout)
	if err != nil {
		return nil, fmt.Errorf("receive samples: %w", err)
	}
	if len(received) > n {
		received = received[:n]
	}
	if len(received) < n {
		h.logError("short read", "run_id", runID, "want", n, "got", len(received))
	}

	progress(PhaseScoring, n, len(received))
	report := Score(sent, received, h.config.Mode)
	report.RunID = runID

	for _, row := range report.Rows {
		if row.Verdict == Error && row.Arrived {
			h.logDebug("mismatch",
				"run_id", runID,
				"index", row.Index,
				"sent", fmt.Sprintf("0x%02X", row.Sent),
				"expected", fmt.Sprintf("0x%02X", row.Expected),
				"received", fmt.Sprintf("0x%02X", row.Received),
			)
		}
	}

	progress(PhaseComplete, n, len(received))
	h.logInfo("run complete",
		"run_id", runID,
		"success", report.Summary(),
		"elapsed", time.Since(start).String(),
	)

	return report, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (h *Harness) reportProgress(p Progress) {
	if h.config.ProgressCallback != nil {
		h.config.ProgressCallback(p)
	}
}

func (h *Harness) logDebug(msg string, keysAndValues ...interface{}) {
	if h.config.Logger != nil {
		h.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (h *Harness) logInfo(msg string, keysAndValues ...interface{}) {
	if h.config.Logger != nil {
		h.config.Logger.Info(msg, keysAndValues...)
	}
}

func (h *Harness) logError(msg string, keysAndValues ...interface{}) {
	if h.config.Logger != nil {
		h.config.Logger.Error(msg, keysAndValues...)
	}
}
