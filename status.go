package netsimplex

import "encoding/json"

// Status reports the outcome of a Solve call.
type Status int

const (
	// StatusOptimal means pricing found no violating arc: the current
	// basis satisfies the optimality conditions (invariants 3 and 4).
	StatusOptimal Status = iota

	// StatusInfeasible means a terminal artificial arc carries positive
	// flow: the supply/demand cannot be satisfied by the given arc set.
	StatusInfeasible

	// StatusUnbounded means an augmenting cycle with all arcs at infinite
	// capacity and strictly negative cost was found (delta == +Inf in the
	// leaving-arc step). For EMD inputs (non-negative user-arc costs) this
	// should never occur; if it does, it signals a malformed arc list.
	StatusUnbounded

	// StatusMaxIterReached means the configured iteration cap was hit
	// while pricing still found violators. The returned basis is feasible
	// but not proven optimal.
	StatusMaxIterReached

	// StatusInvalidInput means pre-solve validation rejected the input
	// (unbalanced supply beyond tolerance, out-of-range endpoint, negative
	// capacity). No pivoting was attempted.
	StatusInvalidInput
)

// String renders the status for logs and error messages.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusUnbounded:
		return "UNBOUNDED"
	case StatusMaxIterReached:
		return "MAX_ITER_REACHED"
	case StatusInvalidInput:
		return "INVALID_INPUT"
	default:
		return "UNKNOWN"
	}
}

// ArcState classifies an arc's relationship to the current spanning-tree
// basis.
type ArcState int8

const (
	// Lower means the arc is nonbasic at its lower bound (flow == 0).
	Lower ArcState = 1
	// Tree means the arc is part of the current spanning-tree basis.
	Tree ArcState = 0
	// Upper means the arc is nonbasic at its upper bound (flow == capacity).
	Upper ArcState = -1
)

// String renders the arc state for debugging.
func (s ArcState) String() string {
	switch s {
	case Lower:
		return "LOWER"
	case Tree:
		return "TREE"
	case Upper:
		return "UPPER"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders the status as its string name rather than its
// underlying int, so CLI output and logs stay human-readable.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// noParent is the sentinel parent id for the synthetic root.
const noParent = -1
