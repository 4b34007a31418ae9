// Package pricing implements pluggable entering-arc selection rules for the
// network simplex pivot engine.
//
// The core only requires BlockSearch, but pricing is modeled as an abstract
// capability — init(arc_count), find_entering(graph_state) -> Option<arc_id>
// — so alternative rules can be swapped in for benchmarking or for
// cross-checking BlockSearch during testing.
package pricing

// Graph is the read-only view of solver state a Strategy needs to evaluate
// arcs. Arc ids range over [0, ArcCount()); user arcs only — artificial
// arcs are never priced.
type Graph interface {
	// ArcCount returns the number of arcs eligible for pricing.
	ArcCount() int

	// SignedReducedCost returns r(e) = state(e) * (cost(e) + pi(source(e)) - pi(target(e))).
	// An arc violates optimality iff r(e) < 0.
	SignedReducedCost(arcID int) float64

	// Tolerance returns the epsilon gate for arcID: eps * max(|pi(i)|, |pi(j)|, |cost|).
	Tolerance(arcID int) float64
}

// Strategy selects the next entering arc given the current basis.
type Strategy interface {
	// Init (re)initializes internal cursors for a graph with arcCount
	// priceable arcs. Called once before the first FindEntering.
	Init(arcCount int)

	// FindEntering returns the id of an arc that violates its optimality
	// condition, or ok=false if none was found (the basis is optimal).
	FindEntering(g Graph) (arcID int, ok bool)
}
