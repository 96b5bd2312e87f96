package ldpc

import "math"

// Outcome classifies how a decode call ended.
type Outcome int

const (
	// OutcomeSuccess means the hard decision's syndrome matched the
	// input syndrome within the iteration budget.
	OutcomeSuccess Outcome = iota
	// OutcomeDiverged means a NaN appeared in a variable->check message.
	OutcomeDiverged
	// OutcomeExhausted means IMax iterations ran without convergence.
	OutcomeExhausted
)

// String implements fmt.Stringer for log-friendly output.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeDiverged:
		return "diverged"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Default iteration budget and message saturation bound.
const (
	DefaultIMax = 50
	DefaultVSat = 100.0
)

// DecodeOptions controls the sum-product iteration budget and message
// saturation bound. The zero value is not usable directly; callers
// should start from DefaultDecodeOptions().
type DecodeOptions struct {
	IMax int     // iteration budget
	VSat float64 // message saturation bound, must be > 0
}

// DefaultDecodeOptions returns {IMax: 50, VSat: 100}.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{IMax: DefaultIMax, VSat: DefaultVSat}
}

// Stats reports how many sum-product iterations ran and why decoding
// stopped.
type Stats struct {
	Iterations int
	Outcome    Outcome
}

// messageStore holds one real value per incident edge in each
// direction, shaped against the current adjacency and scoped to a
// single decode call.
type messageStore struct {
	v2c [][]float64 // per check row r, len(current[r]) messages
	c2v [][]float64 // per variable c, len(check[c]) messages
}

func newMessageStore(current, check [][]int) *messageStore {
	ms := &messageStore{
		v2c: make([][]float64, len(current)),
		c2v: make([][]float64, len(check)),
	}
	for r, row := range current {
		ms.v2c[r] = make([]float64, len(row))
	}
	for cidx, col := range check {
		ms.c2v[cidx] = make([]float64, len(col))
	}
	return ms
}

// DecodeAtCurrentRate runs the sum-product decoder against the current
// adjacency. len(llrs) must equal Cols(); len(s) must equal
// CurrentRows(). Returns the final hard decision (which on failure
// holds the last computed, well-typed but not meaningful, decision),
// whether it converged, and iteration stats.
func (c *Code) DecodeAtCurrentRate(llrs []float64, s []Bit, opts DecodeOptions) ([]Bit, bool, Stats, error) {
	if len(llrs) != c.Cols() {
		return nil, false, Stats{}, ldpcErrorf("DecodeAtCurrentRate", ErrInvalidInputLength)
	}
	if len(s) != c.CurrentRows() {
		return nil, false, Stats{}, ldpcErrorf("DecodeAtCurrentRate", ErrInvalidInputLength)
	}
	xHat, ok, stats := sumProductDecode(c.cur.Current, c.cur.Check, llrs, s, opts)
	return xHat, ok, stats, nil
}

// DecodeInferRate compares len(s) to CurrentRows(); on a mismatch it
// calls SetRate(MotherRows()-len(s)) — mutating Code's rate — before
// decoding. A same-length call decodes without mutation.
func (c *Code) DecodeInferRate(llrs []float64, s []Bit, opts DecodeOptions) ([]Bit, bool, Stats, error) {
	if len(s) != c.CurrentRows() {
		k := c.MotherRows() - len(s)
		if k < 0 || k > c.MaxRASteps() {
			return nil, false, Stats{}, ldpcErrorf("DecodeInferRate", ErrUnsupportedRate)
		}
		if err := c.SetRate(k); err != nil {
			return nil, false, Stats{}, ldpcErrorf("DecodeInferRate", err)
		}
	}
	return c.DecodeAtCurrentRate(llrs, s, opts)
}

// sumProductDecode is the stateless core of the belief-propagation
// decoder: it owns no Code state and can be exercised directly by tests
// against any (current, check) adjacency pair.
//
// Per iteration: check-node update (writes c2v), saturate, variable-node
// update (writes v2c, accumulates S_c and the hard decision), saturate,
// NaN check, early-termination encode-and-compare. The check-node
// fallback for an exact-zero divisor uses tanh(0.5*v2c[r][k']) over
// k' != k, recomputing the product with that edge excluded — not
// reusing the zero slot itself.
func sumProductDecode(current, check [][]int, llrs []float64, s []Bit, opts DecodeOptions) ([]Bit, bool, Stats) {
	n := len(llrs)
	ms := newMessageStore(current, check)
	xHat := make([]Bit, n)

	// Iteration 0 has no incoming check->variable messages yet, so the
	// initial variable->check message on every edge is just the channel
	// LLR for that variable.
	for r, row := range current {
		for i, c := range row {
			ms.v2c[r][i] = llrs[c]
		}
	}

	colCursor := make([]int, len(check))
	rowCursor := make([]int, len(current))

	for iter := 0; iter < opts.IMax; iter++ {
		// Check-node update: writes c2v via per-column cursors.
		for i := range colCursor {
			colCursor[i] = 0
		}
		for r, row := range current {
			checkNodeUpdate(row, ms.v2c[r], s[r], ms.c2v, colCursor)
		}
		saturate(ms.c2v, opts.VSat)

		// Variable-node update: writes v2c via per-row cursors, and
		// accumulates the hard decision in the same pass.
		for i := range rowCursor {
			rowCursor[i] = 0
		}
		for cidx, col := range check {
			sVar := llrs[cidx]
			for _, v := range ms.c2v[cidx] {
				sVar += v
			}
			xHat[cidx] = BitFromBool(sVar < 0)
			for pos, r := range col {
				out := sVar - ms.c2v[cidx][pos]
				rc := rowCursor[r]
				rowCursor[r]++
				ms.v2c[r][rc] = out
			}
		}
		saturate(ms.v2c, opts.VSat)

		if hasNaN(ms.v2c) {
			return xHat, false, Stats{Iterations: iter + 1, Outcome: OutcomeDiverged}
		}

		candidate := encodeAdjacency(current, xHat)
		if bitsEqual(candidate, s) {
			return xHat, true, Stats{Iterations: iter + 1, Outcome: OutcomeSuccess}
		}
	}

	return xHat, false, Stats{Iterations: opts.IMax, Outcome: OutcomeExhausted}
}

// checkNodeUpdate computes the outgoing check->variable messages for
// one check row and places them into c2v via per-column cursors, so
// slot ordering mirrors CheckAdjacency's variable-wise view.
func checkNodeUpdate(row []int, v2cRow []float64, sBit Bit, c2v [][]float64, colCursor []int) {
	tanhs := make([]float64, len(row))
	for i, m := range v2cRow {
		tanhs[i] = math.Tanh(0.5 * m)
	}
	sign := 1.0 - 2.0*float64(sBit&1)
	prod := 1.0
	for _, t := range tanhs {
		prod *= t
	}
	pr := sign * prod

	for i, c := range row {
		var q float64
		t := tanhs[i]
		if t != 0 {
			q = pr / t
		} else {
			excl := 1.0
			for j, tj := range tanhs {
				if j == i {
					continue
				}
				excl *= tj
			}
			q = sign * excl
		}
		msgOut := math.Log((1 + q) / (1 - q))
		cursor := colCursor[c]
		colCursor[c]++
		c2v[c][cursor] = msgOut
	}
}

func saturate(store [][]float64, vsat float64) {
	for _, row := range store {
		for i, v := range row {
			if v > vsat {
				row[i] = vsat
			} else if v < -vsat {
				row[i] = -vsat
			}
		}
	}
}

func hasNaN(store [][]float64) bool {
	for _, row := range store {
		for _, v := range row {
			if math.IsNaN(v) {
				return true
			}
		}
	}
	return false
}

func bitsEqual(a, b []Bit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if (a[i] & 1) != (b[i] & 1) {
			return false
		}
	}
	return true
}
