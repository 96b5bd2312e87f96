package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/qkdcore/ldpc4qkd/ldpc"
)

// Instrumented wraps an *ldpc.Code, recording decode iteration counts
// and outcomes against a caller-supplied prometheus.Registerer.
type Instrumented struct {
	code *ldpc.Code

	iterations prometheus.Histogram
	outcomes   *prometheus.CounterVec
}

// NewInstrumented registers the ldpc4qkd_decode_iterations and
// ldpc4qkd_decode_outcomes_total metrics on reg and returns a wrapper around code. reg is typically a
// *prometheus.Registry the caller already owns.
func NewInstrumented(code *ldpc.Code, reg prometheus.Registerer) (*Instrumented, error) {
	iterations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "ldpc4qkd",
		Name:      "decode_iterations",
		Help:      "Number of sum-product iterations a decode call ran for.",
		Buckets:   prometheus.LinearBuckets(1, 5, 10),
	})
	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ldpc4qkd",
		Name:      "decode_outcomes_total",
		Help:      "Decode calls by outcome (success, diverged, exhausted).",
	}, []string{"outcome"})

	if err := reg.Register(iterations); err != nil {
		return nil, err
	}
	if err := reg.Register(outcomes); err != nil {
		return nil, err
	}

	return &Instrumented{code: code, iterations: iterations, outcomes: outcomes}, nil
}

// DecodeAtCurrentRate delegates to the wrapped Code and records the
// resulting iteration count and outcome.
func (in *Instrumented) DecodeAtCurrentRate(llrs []float64, s []ldpc.Bit, opts ldpc.DecodeOptions) ([]ldpc.Bit, bool, ldpc.Stats, error) {
	xHat, ok, stats, err := in.code.DecodeAtCurrentRate(llrs, s, opts)
	if err == nil {
		in.iterations.Observe(float64(stats.Iterations))
		in.outcomes.WithLabelValues(stats.Outcome.String()).Inc()
	}
	return xHat, ok, stats, err
}

// DecodeInferRate delegates to the wrapped Code and records the
// resulting iteration count and outcome.
func (in *Instrumented) DecodeInferRate(llrs []float64, s []ldpc.Bit, opts ldpc.DecodeOptions) ([]ldpc.Bit, bool, ldpc.Stats, error) {
	xHat, ok, stats, err := in.code.DecodeInferRate(llrs, s, opts)
	if err == nil {
		in.iterations.Observe(float64(stats.Iterations))
		in.outcomes.WithLabelValues(stats.Outcome.String()).Inc()
	}
	return xHat, ok, stats, err
}

// Code returns the wrapped *ldpc.Code for callers that need direct,
// un-instrumented access (e.g. SetRate).
func (in *Instrumented) Code() *ldpc.Code { return in.code }
