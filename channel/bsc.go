package channel

import (
	"math"
	"math/rand"

	"github.com/qkdcore/ldpc4qkd/ldpc"
)

// FlipBits applies an independent binary-symmetric-channel bit flip
// with probability p to each bit of x, returning a new slice; x is not
// mutated. rng is caller-owned so simulations stay deterministic under
// a fixed seed, so a simulation run stays reproducible.
func FlipBits(rng *rand.Rand, x []ldpc.Bit, p float64) []ldpc.Bit {
	out := make([]ldpc.Bit, len(x))
	for i, b := range x {
		if rng.Float64() < p {
			out[i] = b ^ 1
		} else {
			out[i] = b
		}
	}
	return out
}

// LLRsForBSC converts a received (possibly flipped) bit vector into
// log-likelihood ratios for a binary symmetric channel with crossover
// probability p, via ℓ = log((1-p)/p) * (1 - 2*received[i]) — positive
// for a received 0, negative for a received 1, magnitude reflecting
// channel confidence. p must lie in (0, 0.5) for a finite, non-zero
// ratio.
func LLRsForBSC(received []ldpc.Bit, p float64) []float64 {
	ratio := math.Log((1 - p) / p)
	out := make([]float64, len(received))
	for i, b := range received {
		sign := 1.0
		if b == 1 {
			sign = -1.0
		}
		out[i] = sign * ratio
	}
	return out
}
