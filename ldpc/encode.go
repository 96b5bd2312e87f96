package ldpc

import "github.com/qkdcore/ldpc4qkd/matrix"

// encodeAdjacency computes s[r] = XOR over c in adj[r] of x[c], for
// every row r of adj. x must have length n; the caller is responsible
// for that check. Complexity: O(nnz(adj)).
func encodeAdjacency(adj matrix.Adjacency, x []Bit) []Bit {
	s := make([]Bit, len(adj))
	for r, row := range adj {
		var acc Bit
		for _, c := range row {
			acc ^= x[c] & 1
		}
		s[r] = acc
	}
	return s
}

// EncodeAtCurrentRate computes the syndrome of x against the current
// adjacency: s[r] = XOR over c in row r of x[c]. len(x) must equal
// Cols(); the returned syndrome has length CurrentRows().
func (c *Code) EncodeAtCurrentRate(x []Bit) ([]Bit, error) {
	if len(x) != c.Cols() {
		return nil, ldpcErrorf("EncodeAtCurrentRate", ErrInvalidInputLength)
	}
	return encodeAdjacency(c.cur.Current, x), nil
}

// EncodeMother computes the syndrome of x against the mother adjacency,
// ignoring the current rate entirely. The returned syndrome has length
// MotherRows().
func (c *Code) EncodeMother(x []Bit) ([]Bit, error) {
	if len(x) != c.Cols() {
		return nil, ldpcErrorf("EncodeMother", ErrInvalidInputLength)
	}
	return encodeAdjacency(c.mother.MotherAdjacency(), x), nil
}

// EncodeWithLength computes a syndrome of exactly length L without
// changing Code's current rate: it performs the mother-rate encode,
// then applies the rate-adaption row-XOR directly to the resulting bit
// syndrome via the same schedule, consuming K = MotherRows() - L pairs.
// L must lie in [MotherRows() - MaxRASteps(), MotherRows()].
func (c *Code) EncodeWithLength(x []Bit, l int) ([]Bit, error) {
	if len(x) != c.Cols() {
		return nil, ldpcErrorf("EncodeWithLength", ErrInvalidInputLength)
	}
	lo := c.MotherRows() - c.MaxRASteps()
	if l < lo || l > c.MotherRows() {
		return nil, ldpcErrorf("EncodeWithLength", ErrUnsupportedRate)
	}

	sMother := encodeAdjacency(c.mother.MotherAdjacency(), x)
	k := c.MotherRows() - l
	return applyScheduleToBits(sMother, c.sched, k)
}

// applyScheduleToBits mirrors rateadapt.Apply's row consumption and
// compaction, but XOR-combines syndrome bits instead of unioning
// variable sets — used by EncodeWithLength so a length-selecting encode
// never has to re-derive adjacency.
func applyScheduleToBits(sMother []Bit, sched scheduleView, k int) ([]Bit, error) {
	m := len(sMother)
	consumed := make([]bool, m)
	combined := make([]Bit, k)
	for i := 0; i < k; i++ {
		a, b := sched.Pair(i)
		combined[i] = sMother[a] ^ sMother[b]
		consumed[a] = true
		consumed[b] = true
	}
	out := make([]Bit, 0, m-k)
	for r := 0; r < m; r++ {
		if consumed[r] {
			continue
		}
		out = append(out, sMother[r])
	}
	out = append(out, combined...)
	return out, nil
}

// scheduleView is the narrow surface applyScheduleToBits needs from a
// *rateadapt.Schedule, kept as an interface so this file does not need
// to import the concrete pair-bounds validation rateadapt already did.
type scheduleView interface {
	Pair(i int) (a, b int)
}
