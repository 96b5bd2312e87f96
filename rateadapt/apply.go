package rateadapt

import "github.com/qkdcore/ldpc4qkd/matrix"

// Result holds the derived adjacency pair for one rate choice.
type Result struct {
	Current matrix.Adjacency // check -> variables, length M-K
	Check   matrix.Adjacency // variable -> checks, length N, transpose of Current
}

// Apply runs the rate-adaption transform against mother, combining the
// first 2*k rows named by sched and leaving the rest in front in their
// original order.
//
// Stage 1 (Validate): 0 <= k <= sched.KMax().
// Stage 2 (Combine): for each of the k pairs, merge the two
// already-sorted rows, dropping entries shared by both (variable-node
// elimination), and mark both source rows consumed.
// Stage 3 (Compact): walk the mother rows in order, skipping consumed
// ones, to fill the front M-2k slots.
// Stage 4 (Transpose): derive CheckAdjacency from CurrentAdjacency.
//
// Complexity: O(nnz + k*rowLength) dominated by the merge of each
// combined row pair.
func Apply(mother matrix.Adjacency, n int, sched *Schedule, k int) (Result, error) {
	kMax := sched.KMax()
	if k < 0 {
		return Result{}, rateadaptErrorf("Apply", ErrRateNegative)
	}
	if k > kMax {
		return Result{}, rateadaptErrorf("Apply", ErrRateExceedsMax)
	}

	m := mother.Rows()
	working := mother.Clone()
	consumed := make([]bool, m)

	combined := make(matrix.Adjacency, k)
	for i := 0; i < k; i++ {
		a, b := sched.Pair(i)
		combined[i] = symmetricDifference(working[a], working[b])
		consumed[a] = true
		consumed[b] = true
	}

	front := make(matrix.Adjacency, 0, m-2*k)
	for r := 0; r < m; r++ {
		if consumed[r] {
			continue
		}
		front = append(front, working[r])
	}

	current := make(matrix.Adjacency, 0, m-k)
	current = append(current, front...)
	current = append(current, combined...)

	check := transpose(current, n)

	return Result{Current: current, Check: check}, nil
}

// symmetricDifference returns the sorted, duplicate-free union of a and
// b with entries present in both removed (variable-node elimination).
// Both a and b are assumed sorted ascending (guaranteed by
// matrix.MotherMatrix's derivation), so this runs as a linear merge.
// Complexity: O(len(a)+len(b)).
func symmetricDifference(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default: // equal: shared variable, eliminated from both
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// transpose derives CheckAdjacency (variable -> incident checks) from
// CurrentAdjacency (check -> incident variables) over n variables.
// Complexity: O(nnz).
func transpose(current matrix.Adjacency, n int) matrix.Adjacency {
	check := make(matrix.Adjacency, n)
	for r, row := range current {
		for _, c := range row {
			check[c] = append(check[c], r)
		}
	}
	return check
}
