package harness

import (
	"bytes"
	"fmt"
	"io"

	"github.com/moffa90/go-fpgareg/protocol"
)

// Verdict is the outcome for one sample.
type Verdict bool

const (
	// OK means the expected byte arrived
	OK Verdict = true

	// Error means the byte was wrong or missing
	Error Verdict = false
)

// String returns "OK" or "Error", as printed in the report.
func (v Verdict) String() string {
	if v == OK {
		return "OK"
	}
	return "Error"
}

// Row is the result for one sample index.
type Row struct {
	// Index is the 0-based sample position
	Index int

	// Sent is the byte transmitted
	Sent byte

	// Expected is Sent rotated under the run's mode
	Expected byte

	// Received is the byte read back; meaningful only when Arrived is set
	Received byte

	// Arrived is false for indices past the end of a short read
	Arrived bool

	// Verdict is OK when the expected byte arrived
	Verdict Verdict
}

// Report is the scored outcome of one run.
type Report struct {
	RunID    string
	Mode     protocol.RotationMode
	Sent     []byte
	Received []byte
	Rows     []Row
	Errors   int
}

// Score compares received against the rotation of sent under mode.
// Indices at or past len(received) are errors; received bytes beyond
// len(sent) are ignored.
func Score(sent, received []byte, mode protocol.RotationMode) *Report {
	r := &Report{
		Mode:     mode,
		Sent:     sent,
		Received: received,
		Rows:     make([]Row, len(sent)),
	}

	for i, b := range sent {
		row := Row{
			Index:    i,
			Sent:     b,
			Expected: protocol.Rotate(b, mode),
		}
		if i < len(received) {
			row.Received = received[i]
			row.Arrived = true
		}
		row.Verdict = Verdict(row.Arrived && row.Received == row.Expected)
		if row.Verdict == Error {
			r.Errors++
		}
		r.Rows[i] = row
	}

	return r
}

// Samples is the number of bytes sent.
func (r *Report) Samples() int {
	return len(r.Sent)
}

// Successes is Samples minus Errors.
func (r *Report) Successes() int {
	return len(r.Sent) - r.Errors
}

// Passed reports whether every sample came back as expected.
func (r *Report) Passed() bool {
	return r.Errors == 0
}

// Summary renders "<successes>/<samples>".
func (r *Report) Summary() string {
	return fmt.Sprintf("%d/%d", r.Successes(), r.Samples())
}

// WriteTo prints the report table:
//
//	No. | Sent (Binary)  | Shifted (Binary)
//	-------------------------------------------------
//	 1  | 10000001 | 00000011 OK
//
//	Success Rate: 50/50
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	if r.RunID != "" {
		fmt.Fprintf(&buf, "Run %s, mode %s\n\n", r.RunID, r.Mode)
	}
	buf.WriteString("No. | Sent (Binary)  | Shifted (Binary)\n")
	buf.WriteString("-------------------------------------------------\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&buf, "%2d  | %s | %s %s\n",
			row.Index+1, protocol.ByteBinary(row.Sent), protocol.ByteBinary(row.Expected), row.Verdict)
	}
	fmt.Fprintf(&buf, "\nSuccess Rate: %s\n", r.Summary())

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
