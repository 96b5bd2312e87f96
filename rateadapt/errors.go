package rateadapt

import (
	"errors"
	"fmt"
)

var (
	// ErrScheduleOddLength is returned when a schedule's length is odd;
	// it must encode whole (a, b) pairs.
	ErrScheduleOddLength = errors.New("rateadapt: schedule length must be even")

	// ErrScheduleIndexOutOfRange is returned when a schedule entry names
	// a row outside [0, M).
	ErrScheduleIndexOutOfRange = errors.New("rateadapt: schedule row index out of range")

	// ErrRateExceedsMax is returned when K > K_max (len(schedule)/2).
	ErrRateExceedsMax = errors.New("rateadapt: requested K exceeds K_max")

	// ErrRateNegative is returned when K < 0.
	ErrRateNegative = errors.New("rateadapt: requested K is negative")
)

func rateadaptErrorf(op string, err error) error {
	return fmt.Errorf("rateadapt.%s: %w", op, err)
}
