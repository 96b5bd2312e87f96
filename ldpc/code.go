package ldpc

import (
	"github.com/qkdcore/ldpc4qkd/matrix"
	"github.com/qkdcore/ldpc4qkd/rateadapt"
)

// Code is the public rate-controller façade: it owns an immutable
// mother matrix and schedule, plus the derived adjacency for whichever
// rate is currently selected. Encode/decode entry points are read-only
// with respect to Code and safe for concurrent callers provided no
// concurrent caller is running SetRate or DecodeInferRate with a
// mismatched syndrome length — Code intentionally holds no internal
// lock, so that mutation discipline stays visible to callers instead of
// being hidden inside the façade.
type Code struct {
	mother *matrix.MotherMatrix
	sched  *rateadapt.Schedule
	k      int
	cur    rateadapt.Result
}

// New builds a Code from a mother matrix and an optional schedule
// (nil means K_max=0: rate adaption is unavailable, only K=0 is legal).
// kInit defaults to 0.
//
// Stage 1 (Validate): kInit in [0, schedule.KMax()].
// Stage 2 (Derive): apply the rate-adaption transform once at kInit.
func New(mother *matrix.MotherMatrix, sched *rateadapt.Schedule, kInit int) (*Code, error) {
	if sched == nil {
		var err error
		sched, err = rateadapt.NewSchedule(nil, mother.M())
		if err != nil {
			return nil, ldpcErrorf("New", err)
		}
	}
	if sched.Bound() != mother.M() {
		return nil, ldpcErrorf("New", ErrInvalidSchedule)
	}
	if kInit < 0 || kInit > sched.KMax() {
		return nil, ldpcErrorf("New", ErrInvalidSchedule)
	}

	c := &Code{mother: mother, sched: sched}
	if err := c.SetRate(kInit); err != nil {
		return nil, ldpcErrorf("New", err)
	}
	return c, nil
}

// NewFromCSC is a convenience constructor combining
// matrix.NewMotherMatrixFromCSC, rateadapt.NewSchedule, and New.
func NewFromCSC(colPtr, rowIdx, scheduleRows []int, kInit int) (*Code, error) {
	mm, err := matrix.NewMotherMatrixFromCSC(colPtr, rowIdx)
	if err != nil {
		return nil, ldpcErrorf("NewFromCSC", err)
	}
	sched, err := rateadapt.NewSchedule(scheduleRows, mm.M())
	if err != nil {
		return nil, ldpcErrorf("NewFromCSC", err)
	}
	return New(mm, sched, kInit)
}

// NewFromAdjacency is a convenience constructor for callers who already
// hold a pre-materialised MotherAdjacency (e.g. from a quasi-cyclic
// expander external to this library).
func NewFromAdjacency(adj matrix.Adjacency, scheduleRows []int, kInit int) (*Code, error) {
	mm, err := matrix.NewMotherMatrixFromAdjacency(adj)
	if err != nil {
		return nil, ldpcErrorf("NewFromAdjacency", err)
	}
	sched, err := rateadapt.NewSchedule(scheduleRows, mm.M())
	if err != nil {
		return nil, ldpcErrorf("NewFromAdjacency", err)
	}
	return New(mm, sched, kInit)
}

// SetRate re-materialises CurrentAdjacency/CheckAdjacency for K. It is
// the only core operation that mutates Code; callers must ensure
// exclusive access while it runs.
func (c *Code) SetRate(k int) error {
	res, err := rateadapt.Apply(c.mother.MotherAdjacency(), c.mother.N(), c.sched, k)
	if err != nil {
		return ldpcErrorf("SetRate", err)
	}
	c.k = k
	c.cur = res
	return nil
}

// CurrentRate returns the currently selected K.
func (c *Code) CurrentRate() int { return c.k }

// CurrentRows returns the current row count, M - K.
func (c *Code) CurrentRows() int { return c.cur.Current.Rows() }

// MotherRows returns M, the mother row count.
func (c *Code) MotherRows() int { return c.mother.M() }

// Cols returns N, the number of variable columns.
func (c *Code) Cols() int { return c.mother.N() }

// MaxRASteps returns K_max, the maximum supported rate-adaption step
// count.
func (c *Code) MaxRASteps() int { return c.sched.KMax() }

// CurrentAdjacency returns a read-only view of the current check ->
// variables adjacency. Callers must not mutate the returned slices.
func (c *Code) CurrentAdjacency() matrix.Adjacency { return c.cur.Current }

// CheckAdjacency returns a read-only view of the current variable ->
// checks adjacency (transpose of CurrentAdjacency).
func (c *Code) CheckAdjacency() matrix.Adjacency { return c.cur.Check }

// Equal reports whether two codes have the same mother CSC, the same
// schedule, the same derived adjacency, and the same current K.
func (c *Code) Equal(other *Code) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.k != other.k {
		return false
	}
	if c.mother.M() != other.mother.M() || c.mother.N() != other.mother.N() {
		return false
	}
	if !adjacencyEqual(c.mother.MotherAdjacency(), other.mother.MotherAdjacency()) {
		return false
	}
	if c.sched.Len() != other.sched.Len() {
		return false
	}
	for i := 0; i < c.sched.KMax(); i++ {
		a1, b1 := c.sched.Pair(i)
		a2, b2 := other.sched.Pair(i)
		if a1 != a2 || b1 != b2 {
			return false
		}
	}
	return adjacencyEqual(c.cur.Current, other.cur.Current) && adjacencyEqual(c.cur.Check, other.cur.Check)
}

func adjacencyEqual(a, b matrix.Adjacency) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
