// Package matrix owns the immutable mother parity-check matrix in
// compressed-sparse-column (CSC) form and derives the bipartite
// variable-node adjacency used by encoding and decoding.
//
// A CSC holds two arrays: ColPtr (length N+1) and RowIdx (length nnz).
// Column c's non-zero row indices live in RowIdx[ColPtr[c]:ColPtr[c+1]].
// Only presence of a 1 matters; there are no stored zeros and no values.
//
// MotherAdjacency is derived once, at construction, by walking columns in
// ascending order; each row's variable list therefore comes out sorted,
// a property the rateadapt package relies on.
package matrix
