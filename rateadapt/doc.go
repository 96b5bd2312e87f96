// Package rateadapt applies a row-pair-XOR schedule to a mother
// adjacency, producing the CurrentAdjacency and CheckAdjacency used by
// encoding and decoding at a given rate.
//
// A Schedule lists K_max row pairs (a_i, b_i) of mother check rows. For
// a chosen K in [0, K_max], the first 2K rows named by the schedule are
// "consumed": they disappear from the front of the output and each pair
// is replaced by one synthetic row holding the symmetric difference of
// their variable sets. Surviving (non-consumed) rows keep their
// original mother-row order at the front. See matrix/types.go's
// Adjacency for the row representation shared across packages.
package rateadapt
