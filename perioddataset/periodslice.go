package perioddataset

// PeriodSlice wraps a slice of integer periods with convenience accessors.
type PeriodSlice []int

func (p PeriodSlice) Start() int {
	if len(p) < 1 {
		return 0
	}
	return p[0]
}

func (p PeriodSlice) End() int {
	if len(p) < 1 {
		return 0
	}
	return p[len(p)-1]
}

// Extend returns the next horizon periods immediately following the last
// period of the slice using the given step.
func (p PeriodSlice) Extend(horizon, step int) []int {
	next := make([]int, 0, horizon)
	last := p.End()
	for i := 1; i <= horizon; i++ {
		next = append(next, last+i*step)
	}
	return next
}
