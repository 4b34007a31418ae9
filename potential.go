package netsimplex

// updatePotentials applies the uniform potential shift sigma to every node
// in the subtree now rooted at uIn, after restructure has already attached
// it to vIn and rebuilt thread/succNum for it (§4.8).
//
//	sigma = forward[uIn] ? pi[vIn] - pi[uIn] - cost(inArc) : pi[vIn] - pi[uIn] + cost(inArc)
//
// forward[uIn] true means uIn is inArc's source (vIn its target): zeroing
// reducedCost(inArc) = cost + pi[uIn] - pi[vIn] requires pi[uIn] to land at
// pi[vIn] - cost. forward[uIn] false means uIn is the target, so pi[uIn]
// must land at pi[vIn] + cost instead. Every other tree arc inside the
// moved subtree keeps the same two endpoints relative to each other, so
// shifting every node in the subtree by the same sigma preserves their
// reduced costs at zero too.
func (s *Solver) updatePotentials(inArc, uIn, vIn int) {
	sigma := s.pi[vIn] - s.pi[uIn]
	if s.forward[uIn] {
		sigma -= s.arcCost[inArc]
	} else {
		sigma += s.arcCost[inArc]
	}
	if sigma == 0 {
		return
	}

	x := uIn
	for i := 0; i < s.succNum[uIn]; i++ {
		s.pi[x] += sigma
		x = s.thread[x]
	}
}
