package rateadapt

// Schedule is an immutable sequence of mother-row indices, interpreted as
// K_max ordered pairs (a_i, b_i) to be XOR-combined. Rows is always of
// even length; KMax() == len(Rows)/2.
type Schedule struct {
	rows []int
	m    int // mother row count the schedule was validated against
}

// NewSchedule validates rows against a mother row count m (every entry
// must lie in [0, m)) and that len(rows) is even.
// Complexity: O(len(rows)).
func NewSchedule(rows []int, m int) (*Schedule, error) {
	if len(rows)%2 != 0 {
		return nil, rateadaptErrorf("NewSchedule", ErrScheduleOddLength)
	}
	for _, r := range rows {
		if r < 0 || r >= m {
			return nil, rateadaptErrorf("NewSchedule", ErrScheduleIndexOutOfRange)
		}
	}
	return &Schedule{rows: append([]int(nil), rows...), m: m}, nil
}

// KMax returns the maximum number of rate-adaption steps this schedule
// supports.
func (s *Schedule) KMax() int {
	if s == nil {
		return 0
	}
	return len(s.rows) / 2
}

// Pair returns the i-th pair (a, b) of mother row indices, i in [0, KMax).
func (s *Schedule) Pair(i int) (a, b int) {
	return s.rows[2*i], s.rows[2*i+1]
}

// Len returns the raw flattened schedule length (2*KMax).
func (s *Schedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Bound returns the mother row count this schedule was validated
// against at construction.
func (s *Schedule) Bound() int {
	if s == nil {
		return 0
	}
	return s.m
}
