package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for the matrix package. Algorithms return these directly
// (or wrapped with %w via matrixErrorf) and callers match them with
// errors.Is; nothing here panics on caller-triggered conditions.
var (
	// ErrEmptyRowIdx is returned when the row-index array has no entries.
	ErrEmptyRowIdx = errors.New("matrix: row index array is empty")

	// ErrColPtrNotMonotonic is returned when ColPtr is not non-decreasing.
	ErrColPtrNotMonotonic = errors.New("matrix: colptr is not non-decreasing")

	// ErrColPtrBadStart is returned when ColPtr[0] != 0.
	ErrColPtrBadStart = errors.New("matrix: colptr[0] must be 0")

	// ErrColPtrBadEnd is returned when ColPtr[N] != len(RowIdx).
	ErrColPtrBadEnd = errors.New("matrix: colptr[N] must equal len(rowIdx)")

	// ErrColPtrBadLength is returned when ColPtr is empty; it needs at
	// least one entry, since N is taken as len(ColPtr)-1.
	ErrColPtrBadLength = errors.New("matrix: colptr length must be N+1")

	// ErrRowIndexOutOfRange is returned when a row index in RowIdx (or an
	// adjacency entry) falls outside [0, M).
	ErrRowIndexOutOfRange = errors.New("matrix: row index out of range")

	// ErrEmptyAdjacency is returned when constructing from a pre-built
	// MotherAdjacency that has zero rows.
	ErrEmptyAdjacency = errors.New("matrix: adjacency has no rows")

	// ErrDuplicateRowEntry is returned when a row of an adjacency contains
	// the same variable index twice (violates §3 invariant (ii)).
	ErrDuplicateRowEntry = errors.New("matrix: duplicate variable index in row")
)

// matrixErrorf wraps err with an operation tag for %w-based matching by
// callers via errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}
