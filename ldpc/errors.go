package ldpc

import (
	"errors"
	"fmt"
)

// Invalid CSC construction errors live in the matrix package.
// Divergence and exhaustion are not errors here — they surface as
// Outcome values on a boolean decode result, since callers routinely
// iterate over increasing syndrome lengths and treat non-convergence as
// routine, not exceptional.
var (
	// ErrInvalidSchedule is returned by New when the schedule was
	// validated against a different mother row count than the matrix, or
	// when K_init lies outside [0, K_max]. Odd-length schedules and row
	// indices >= M are rejected earlier by rateadapt.NewSchedule, with
	// rateadapt's own errors.
	ErrInvalidSchedule = errors.New("ldpc: invalid rate-adaption schedule")

	// ErrInvalidInputLength is returned when an encode/decode entry point
	// receives a bit vector, LLR vector, or syndrome of the wrong length.
	ErrInvalidInputLength = errors.New("ldpc: invalid input length")

	// ErrUnsupportedRate is returned when a requested output length (for
	// EncodeWithLength) falls outside [M - K_max, M], or when the
	// syndrome length given to DecodeInferRate implies a K outside
	// [0, K_max]. SetRate reports an out-of-range K with rateadapt's
	// errors instead.
	ErrUnsupportedRate = errors.New("ldpc: unsupported rate")
)

func ldpcErrorf(op string, err error) error {
	return fmt.Errorf("ldpc.%s: %w", op, err)
}
