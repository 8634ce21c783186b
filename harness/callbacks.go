package harness

import "time"

// Phase names reported through ProgressCallback.
const (
	PhaseSettling     = "settling"
	PhaseGenerating   = "generating"
	PhaseTransmitting = "transmitting"
	PhaseWaiting      = "waiting"
	PhaseReceiving    = "receiving"
	PhaseScoring      = "scoring"
	PhaseComplete     = "complete"
)

// Progress describes where a run is.
type Progress struct {
	// RunID identifies the run
	RunID string

	// Phase is one of the Phase* constants
	Phase string

	// Sent is the number of bytes transmitted so far
	Sent int

	// Received is the number of bytes read back so far
	Received int

	// Samples is the number of bytes the run sends
	Samples int

	// ElapsedTime is the time since the run started
	ElapsedTime time.Duration
}

// ProgressCallback is called at the start of each phase and once on
// completion. Implementations should return quickly.
//
// Example:
//
//	h := harness.New(ch,
//	    harness.WithProgressCallback(func(p harness.Progress) {
//	        fmt.Printf("[%s] %d/%d received\n", p.Phase, p.Received, p.Samples)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// harness. logging.Adapter satisfies it.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
