package pricing

// FirstEligible returns the first violating arc encountered while scanning
// forward from its cursor, wrapping once around the arc list. It performs
// the least work per pivot of the three strategies but tends to need more
// pivots overall; useful for stress-testing the anti-cycling tie-break
// rules since it reliably surfaces degenerate pivots early.
type FirstEligible struct {
	arcCount int
	nextArc  int
}

// Init resets the scan cursor for arcCount priceable arcs.
func (f *FirstEligible) Init(arcCount int) {
	f.arcCount = arcCount
	f.nextArc = 0
}

// FindEntering implements the Strategy interface.
func (f *FirstEligible) FindEntering(g Graph) (int, bool) {
	if f.arcCount == 0 {
		return 0, false
	}

	e := f.nextArc
	for i := 0; i < f.arcCount; i++ {
		r := g.SignedReducedCost(e)
		if r < -g.Tolerance(e) {
			next := e + 1
			if next == f.arcCount {
				next = 0
			}
			f.nextArc = next
			return e, true
		}
		e++
		if e == f.arcCount {
			e = 0
		}
	}
	return 0, false
}
