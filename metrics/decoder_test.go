package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/qkdcore/ldpc4qkd/ldpc"
	"github.com/qkdcore/ldpc4qkd/metrics"
	"github.com/stretchr/testify/require"
)

func TestInstrumented_RecordsSuccessOutcome(t *testing.T) {
	code, err := ldpc.NewFromCSC(
		[]int{0, 1, 2, 4, 5, 7, 9, 12},
		[]int{0, 1, 0, 1, 2, 0, 2, 1, 2, 0, 1, 2},
		nil, 0,
	)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	in, err := metrics.NewInstrumented(code, reg)
	require.NoError(t, err)

	x := []ldpc.Bit{1, 1, 1, 1, 0, 0, 0}
	s, err := code.EncodeMother(x)
	require.NoError(t, err)

	llrs := make([]float64, len(x))
	for i, b := range x {
		if b == 1 {
			llrs[i] = -20
		} else {
			llrs[i] = 20
		}
	}

	_, ok, _, err := in.DecodeAtCurrentRate(llrs, s, ldpc.DefaultDecodeOptions())
	require.NoError(t, err)
	require.True(t, ok)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.True(t, containsMetric(mfs, "ldpc4qkd_decode_outcomes_total"))
}

func containsMetric(mfs []*dto.MetricFamily, name string) bool {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return true
		}
	}
	return false
}
