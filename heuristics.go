package netsimplex

import "math"

// heuristicPivots seeds the basis with a handful of cheap real arcs before
// the main pricing loop starts (§4.2). It never touches pricing state
// beyond the arcs it pivots in, and a bad or empty candidate set just means
// the main loop has more work to do; it is a head start, not a requirement.
func (s *Solver) heuristicPivots() {
	var sources, sinks []int
	for u := 0; u < s.n; u++ {
		switch {
		case s.supply[u] > s.options.Epsilon:
			sources = append(sources, u)
		case s.supply[u] < -s.options.Epsilon:
			sinks = append(sinks, u)
		}
	}

	var candidates []int
	switch {
	case len(sources) == 1 && len(sinks) == 1:
		candidates = s.reversePathArcs(sinks[0], sources[0])
	case len(sinks) > 0:
		candidates = s.cheapestArcsFor(sinks, true)
	default:
		candidates = s.cheapestArcsFor(sources, false)
	}

	for _, arc := range candidates {
		if s.arcState[arc] != Lower && s.arcState[arc] != Upper {
			continue
		}
		if s.SignedReducedCost(arc) < -s.Tolerance(arc) {
			s.pivot(arc)
			s.stats.HeuristicPivots++
		}
	}
}

// reversePathArcs finds one path of real arcs from source to sink by a
// reverse BFS starting at sink, returning the arcs in source->sink order.
// It returns nil if no such path exists among the real arcs.
func (s *Solver) reversePathArcs(sink, source int) []int {
	if sink == source {
		return nil
	}
	visited := make([]bool, s.n)
	viaArc := make([]int, s.n)
	for i := range viaArc {
		viaArc[i] = -1
	}
	visited[sink] = true
	queue := []int{sink}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == source {
			break
		}
		for e := 0; e < s.m; e++ {
			if s.arcTarget[e] == cur && !visited[s.arcSource[e]] {
				visited[s.arcSource[e]] = true
				viaArc[s.arcSource[e]] = e
				queue = append(queue, s.arcSource[e])
			}
		}
	}
	if !visited[source] {
		return nil
	}

	var arcs []int
	cur := source
	for cur != sink {
		e := viaArc[cur]
		if e < 0 {
			return nil
		}
		arcs = append(arcs, e)
		cur = s.arcTarget[e]
	}
	return arcs
}

// cheapestArcsFor picks, for each node, the cheapest real arc touching it on
// the requested side (incoming if incoming is true, outgoing otherwise).
func (s *Solver) cheapestArcsFor(nodes []int, incoming bool) []int {
	var arcs []int
	for _, node := range nodes {
		best := -1
		bestCost := math.Inf(1)
		for e := 0; e < s.m; e++ {
			endpoint := s.arcSource[e]
			if incoming {
				endpoint = s.arcTarget[e]
			}
			if endpoint == node && s.arcCost[e] < bestCost {
				bestCost = s.arcCost[e]
				best = e
			}
		}
		if best >= 0 {
			arcs = append(arcs, best)
		}
	}
	return arcs
}
