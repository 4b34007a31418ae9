package netsimplex

// pivotPlan carries the outcome of the leaving-arc / cycle-augmenter step
// (§4.5) into augmentation and restructuring.
type pivotPlan struct {
	delta      float64
	leavingArc int
	// degenerate is true when the entering arc's own bound won, meaning no
	// tree arc leaves: the pivot only flips the entering arc's state.
	degenerate bool
	uIn        int // endpoint of the subtree that will move
	vIn        int // endpoint the moved subtree attaches to
	uOut       int // node below the leaving arc along the path that held it
}

// sideCoeff returns the direction coefficient for node u's tree arc
// pred[u] when walking up from the entering arc's source (source=true) or
// target (source=false), per §4.6's two augmentation formulas:
//
//	source walk: coeff = forward[u] ? -state : +state
//	target walk: coeff = forward[u] ? +state : -state
//
// coeff > 0 means flow on pred[u] will increase (residual = capacity-flow);
// coeff < 0 means it will decrease (residual = flow).
func sideCoeff(forward bool, state ArcState, source bool) float64 {
	st := float64(state)
	if source {
		if forward {
			return -st
		}
		return st
	}
	if forward {
		return st
	}
	return -st
}

// residualFor returns the residual capacity of arc in the direction
// implied by coeff.
func (s *Solver) residualFor(arc int, coeff float64) float64 {
	if coeff < 0 {
		return s.arcFlow[arc]
	}
	return s.arcCapacity[arc] - s.arcFlow[arc]
}

// planPivot computes delta and the leaving arc for the unique cycle formed
// by adding the entering arc (§4.5). join must be the LCA of the entering
// arc's endpoints (§4.4).
//
// Per §4.5: if the entering arc is LOWER, the "first" path (strict `<`
// tie-break) is the source-to-join walk and the "second" path (`<=`
// tie-break) is the target-to-join walk; if UPPER, the roles swap. The
// coefficient formulas themselves (sideCoeff) are fixed to source/target,
// not to first/second — only which one gets the strict comparison changes.
func (s *Solver) planPivot(inArc, join int) pivotPlan {
	k := s.arcSource[inArc]
	l := s.arcTarget[inArc]
	state := s.arcState[inArc]

	plan := pivotPlan{
		delta:      s.arcCapacity[inArc],
		leavingArc: inArc,
		degenerate: true,
	}

	walk := func(start int, source bool, strict bool) {
		u := start
		for u != join {
			arc := s.pred[u]
			coeff := sideCoeff(s.forward[u], state, source)
			residual := s.residualFor(arc, coeff)
			if (strict && residual < plan.delta) || (!strict && residual <= plan.delta) {
				plan.delta = residual
				plan.leavingArc = arc
				plan.degenerate = false
				plan.uOut = u
				if source {
					plan.uIn = k
					plan.vIn = l
				} else {
					plan.uIn = l
					plan.vIn = k
				}
			}
			u = s.parent[u]
		}
	}

	if state == Lower {
		walk(k, true, true)   // first path: source -> join, strict <
		walk(l, false, false) // second path: target -> join, <=
	} else {
		walk(l, false, true) // first path: target -> join, strict <
		walk(k, true, false) // second path: source -> join, <=
	}

	return plan
}

// augment applies the flow changes implied by plan (§4.6) and flips the
// entering/leaving arc states. It must be called before restructure, since
// it walks the old tree paths from the entering arc's endpoints up to their
// join, and restructure rewrites those parent/pred/forward links.
func (s *Solver) augment(inArc int, plan pivotPlan) {
	state := s.arcState[inArc]
	delta := plan.delta

	if delta > 0 {
		s.arcFlow[inArc] += float64(state) * delta

		k := s.arcSource[inArc]
		l := s.arcTarget[inArc]
		join := s.findJoin(k, l)

		for u := k; u != join; u = s.parent[u] {
			arc := s.pred[u]
			coeff := sideCoeff(s.forward[u], state, true)
			if coeff < 0 {
				s.arcFlow[arc] -= delta
			} else {
				s.arcFlow[arc] += delta
			}
		}
		for u := l; u != join; u = s.parent[u] {
			arc := s.pred[u]
			coeff := sideCoeff(s.forward[u], state, false)
			if coeff < 0 {
				s.arcFlow[arc] -= delta
			} else {
				s.arcFlow[arc] += delta
			}
		}
	}

	if plan.degenerate {
		// The entering arc hit its own opposite bound before any tree arc
		// bound tighter: it flips class without ever joining the basis,
		// so the tree itself is untouched and no restructure is needed.
		if state == Lower {
			s.arcState[inArc] = Upper
			s.arcFlow[inArc] = s.arcCapacity[inArc]
		} else {
			s.arcState[inArc] = Lower
			s.arcFlow[inArc] = 0
		}
		return
	}

	s.arcState[inArc] = Tree
	if s.arcFlow[plan.leavingArc] <= s.options.Epsilon {
		s.arcState[plan.leavingArc] = Lower
		s.arcFlow[plan.leavingArc] = 0
	} else {
		s.arcState[plan.leavingArc] = Upper
		s.arcFlow[plan.leavingArc] = s.arcCapacity[plan.leavingArc]
	}
}
