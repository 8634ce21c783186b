package harness

import "math/rand/v2"

// RandomSource produces uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// RandomBytes returns n independent bytes drawn uniformly from [0, 255].
func RandomBytes(src RandomSource, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(src.IntN(256))
	}
	return out
}
