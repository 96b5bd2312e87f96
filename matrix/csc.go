package matrix

import "sort"

// NewMotherMatrixFromCSC validates a (colptr, rowIdx) pair and derives
// the mother adjacency from it.
//
// Stage 1 (Validate): rowIdx non-empty; colptr non-decreasing, starts at
// 0, and ends at len(rowIdx); every row index in range.
// Stage 2 (Derive): M is inferred as 1+max(rowIdx); walk columns
// ascending and bucket each non-zero into its row's variable list, which
// comes out sorted because columns are visited in order.
// Complexity: O(N + nnz).
func NewMotherMatrixFromCSC(colPtr, rowIdx []int) (*MotherMatrix, error) {
	if len(rowIdx) == 0 {
		return nil, matrixErrorf("NewMotherMatrixFromCSC", ErrEmptyRowIdx)
	}
	if len(colPtr) == 0 {
		return nil, matrixErrorf("NewMotherMatrixFromCSC", ErrColPtrBadLength)
	}
	n := len(colPtr) - 1
	for c := 1; c <= n; c++ {
		if colPtr[c] < colPtr[c-1] {
			return nil, matrixErrorf("NewMotherMatrixFromCSC", ErrColPtrNotMonotonic)
		}
	}
	if colPtr[0] != 0 {
		return nil, matrixErrorf("NewMotherMatrixFromCSC", ErrColPtrBadStart)
	}
	if colPtr[n] != len(rowIdx) {
		return nil, matrixErrorf("NewMotherMatrixFromCSC", ErrColPtrBadEnd)
	}

	// Infer M as 1+max(rowIdx) while validating bounds lazily (we don't
	// know the bound up front, so a first pass finds the max).
	maxRow := -1
	for _, r := range rowIdx {
		if r < 0 {
			return nil, matrixErrorf("NewMotherMatrixFromCSC", ErrRowIndexOutOfRange)
		}
		if r > maxRow {
			maxRow = r
		}
	}
	m := maxRow + 1

	// Stage 2: derive adjacency by walking columns ascending.
	adj := make(Adjacency, m)
	for c := 0; c < n; c++ {
		for j := colPtr[c]; j < colPtr[c+1]; j++ {
			r := rowIdx[j]
			adj[r] = append(adj[r], c)
		}
	}

	return &MotherMatrix{
		csc: CSC{ColPtr: append([]int(nil), colPtr...), RowIdx: append([]int(nil), rowIdx...)},
		m:   m,
		n:   n,
		adj: adj,
	}, nil
}

// NewMotherMatrixFromAdjacency builds a MotherMatrix directly from a
// pre-built MotherAdjacency (e.g. produced by a quasi-cyclic expander
// external to this package). N is inferred as 1+max(variable index)
// across all rows; M is len(adj). No CSC arrays are derived; CSC()
// returns a zero-value CSC in that case since the caller never supplied
// one — callers that need CSC should use NewMotherMatrixFromCSC.
//
// Rows need not arrive pre-sorted; they are normalized (sorted
// ascending) here. Stage 1 (Validate): adj non-empty, rows
// duplicate-free after normalization (invariants (ii)/(iii) of §3 data
// model) and every entry non-negative.
// Complexity: O(sum(k log k)) over row weights k.
func NewMotherMatrixFromAdjacency(adj Adjacency) (*MotherMatrix, error) {
	if len(adj) == 0 {
		return nil, matrixErrorf("NewMotherMatrixFromAdjacency", ErrEmptyAdjacency)
	}

	maxVar := -1
	cloned := adj.Clone()
	for i, row := range cloned {
		sorted := sortedCopy(row)
		for j, c := range sorted {
			if c < 0 {
				return nil, matrixErrorf("NewMotherMatrixFromAdjacency", ErrRowIndexOutOfRange)
			}
			if j > 0 && c == sorted[j-1] {
				return nil, matrixErrorf("NewMotherMatrixFromAdjacency", ErrDuplicateRowEntry)
			}
			if c > maxVar {
				maxVar = c
			}
		}
		cloned[i] = sorted
	}

	n := maxVar + 1

	return &MotherMatrix{
		m:   len(adj),
		n:   n,
		adj: cloned,
	}, nil
}

// sortedCopy returns row sorted ascending in a fresh slice.
func sortedCopy(row []int) []int {
	out := append([]int(nil), row...)
	sort.Ints(out)
	return out
}
