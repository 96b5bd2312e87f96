package channel_test

import (
	"math/rand"
	"testing"

	"github.com/qkdcore/ldpc4qkd/channel"
	"github.com/qkdcore/ldpc4qkd/ldpc"
	"github.com/stretchr/testify/require"
)

func TestFlipBits_ZeroProbabilityIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	x := []ldpc.Bit{1, 0, 1, 1, 0}
	out := channel.FlipBits(rng, x, 0)
	require.Equal(t, x, out)
}

func TestLLRsForBSC_SignMatchesReceivedBit(t *testing.T) {
	received := []ldpc.Bit{0, 1}
	llrs := channel.LLRsForBSC(received, 1.0/7.0)
	require.Positive(t, llrs[0])
	require.Negative(t, llrs[1])
}
