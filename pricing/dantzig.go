package pricing

// Dantzig scans every priceable arc on each call and returns the one with
// the most negative signed reduced cost, i.e. the textbook "steepest"
// entering-arc rule. O(m) per pivot; useful for small graphs and as a
// correctness cross-check against BlockSearch, since it never leaves a
// violating arc on the table.
type Dantzig struct {
	arcCount int
}

// Init records the arc count; Dantzig keeps no scan cursor.
func (d *Dantzig) Init(arcCount int) {
	d.arcCount = arcCount
}

// FindEntering implements the Strategy interface.
func (d *Dantzig) FindEntering(g Graph) (int, bool) {
	minR := 0.0
	bestArc := -1
	bestTol := 0.0

	for e := 0; e < d.arcCount; e++ {
		r := g.SignedReducedCost(e)
		if r < minR {
			minR = r
			bestArc = e
			bestTol = g.Tolerance(e)
		}
	}

	if bestArc >= 0 && minR < -bestTol {
		return bestArc, true
	}
	return 0, false
}
