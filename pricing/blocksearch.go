package pricing

import "math"

// BlockSearch scans arcs in blocks of ceil(sqrt(m)) (floor 10), tracking the
// most-violating arc seen so far. At each block boundary it accepts the
// current best candidate if it clears the epsilon gate; otherwise it keeps
// scanning with the running minimum carried into the next block. A full
// sweep with no accepted candidate means the basis is optimal.
//
// This is the default and only strategy required by the core; it trades a
// slightly weaker per-pivot guarantee (not globally most-violating) for an
// O(sqrt(m)) amortized scan cost instead of O(m) per pivot.
type BlockSearch struct {
	// Floor is the minimum block size regardless of arc count. Zero means
	// the default of 10.
	Floor int

	arcCount  int
	blockSize int
	nextArc   int
}

// Init resets the scan cursor and recomputes the block size for arcCount
// priceable arcs.
func (b *BlockSearch) Init(arcCount int) {
	b.arcCount = arcCount
	b.nextArc = 0
	floor := b.Floor
	if floor <= 0 {
		floor = 10
	}
	size := int(math.Ceil(math.Sqrt(float64(arcCount))))
	if size < floor {
		size = floor
	}
	b.blockSize = size
}

// FindEntering implements the Strategy interface.
func (b *BlockSearch) FindEntering(g Graph) (int, bool) {
	if b.arcCount == 0 {
		return 0, false
	}

	minR := 0.0
	bestArc := -1
	bestTol := 0.0
	examined := 0
	e := b.nextArc

	for i := 0; i < b.arcCount; i++ {
		r := g.SignedReducedCost(e)
		if r < minR {
			minR = r
			bestArc = e
			bestTol = g.Tolerance(e)
		}
		examined++
		e++
		if e == b.arcCount {
			e = 0
		}
		if examined == b.blockSize {
			if bestArc >= 0 && minR < -bestTol {
				b.nextArc = e
				return bestArc, true
			}
			examined = 0
		}
	}

	// Trailing partial block at the end of a full sweep.
	if bestArc >= 0 && minR < -bestTol {
		b.nextArc = e
		return bestArc, true
	}
	b.nextArc = e
	return 0, false
}
