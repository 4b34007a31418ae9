package netsimplex

import (
	"log/slog"
	"math"

	"github.com/flowmetric/netsimplex/internal/solveerr"
	"github.com/flowmetric/netsimplex/pricing"
)

// Inf is a sentinel used for "no capacity limit" and for unreachable/never
// selected distances. It is chosen well below math.MaxFloat64 so that
// ordinary arithmetic against it (adding a potential shift, subtracting a
// cost) never overflows into +Inf or NaN, while still comparing larger than
// any realistic cost or capacity sum an EMD problem would produce.
const Inf = 1e18

// Arc describes one directed transport arc supplied by the caller: a
// source/target node pair, a per-unit cost, and an optional capacity. Use
// Inf (or any value >= Inf) for an uncapacitated arc.
type Arc struct {
	Source   int
	Target   int
	Cost     float64
	Capacity float64
}

// Solver holds all state for one minimum-cost flow computation: the node
// and arc arrays described in spec §3, allocated once for (N, M) and
// mutated in place by the pivot loop. A Solver is single-use: construct one
// with New, call Solve once, then read Result.
type Solver struct {
	n    int // user node count
	m    int // user arc count
	root int // synthetic root id, == n
	na   int // total arc count, m + n

	// Node arrays, indexed 0..n (n is the root).
	supply    []float64
	parent    []int
	pred      []int
	forward   []bool
	thread    []int
	revThread []int
	succNum   []int
	lastSucc  []int
	depth     []int
	pi        []float64

	// Arc arrays, indexed 0..na-1 (user arcs first, then n artificials).
	arcSource   []int
	arcTarget   []int
	arcCost     []float64
	arcCapacity []float64
	arcFlow     []float64
	arcState    []ArcState

	options  Options
	strategy pricing.Strategy

	stats Stats
	log   *slog.Logger
}

// Options configures a Solve call. The zero value behaves like
// DefaultOptions(): New fills in Epsilon, ArtCost and PricingStrategy when
// they are unset.
type Options struct {
	// ArtCost is the per-unit cost sentinel on artificial arcs (§4.1). It
	// must exceed the largest finite path cost the optimum could use. If
	// <= 0, New computes one from the supplied arc costs.
	ArtCost float64

	// Epsilon tolerates floating-point noise: pricing gates on
	// r(e) < -Epsilon*scale (§4.3), and supply balance is accepted within
	// Epsilon*(N+1) of zero (§9 open question — see DESIGN.md).
	Epsilon float64

	// MaxIter bounds pivot count. 0 means unbounded.
	MaxIter int

	// PricingStrategy selects the entering-arc rule. nil uses BlockSearch,
	// the only strategy required by the core (§4.3); Dantzig and
	// FirstEligible (package pricing) are available for cross-checking.
	PricingStrategy pricing.Strategy
}

// DefaultOptions returns Options with BlockSearch pricing, a zero-valued
// ArtCost (auto-computed by New), unbounded iterations, and Epsilon 1e-9.
func DefaultOptions() Options {
	return Options{
		ArtCost: 0,
		Epsilon: 1e-9,
		MaxIter: 0,
	}
}

// Stats accumulates counters about one Solve call, surfaced to callers for
// metrics/logging and to tests asserting on pivot behavior.
type Stats struct {
	HeuristicPivots int
	Pivots          int
	BlockScans      int
	RestructureOps  int
}

// Result is the outcome of a Solve call. ArcFlows and NodePotentials are
// owned copies safe for the caller to retain; they do not alias Solver
// internals.
type Result struct {
	Status        Status
	ArcFlows      []float64 // len == M, in caller arc order
	NodePotentials []float64 // len == N
	TotalCost     float64
	Iterations    int
	Stats         Stats
}

// Err reports a non-nil *solveerr.Error for any Status that is not
// StatusOptimal, for callers that want a single error value to check or
// log rather than switching on Status themselves. It returns nil for
// StatusOptimal.
func (r Result) Err() *solveerr.Error {
	switch r.Status {
	case StatusInfeasible:
		return solveerr.New(solveerr.CodeInfeasible, "no feasible flow satisfies supply and capacity constraints")
	case StatusUnbounded:
		return solveerr.New(solveerr.CodeNegativeCycle, "found an augmenting cycle of unbounded negative cost")
	case StatusMaxIterReached:
		return solveerr.New(solveerr.CodeIterationLimit, "pivot iteration limit reached before optimality was proven")
	case StatusInvalidInput:
		return solveerr.New(solveerr.CodeInvalidArgument, "input was rejected before pivoting began")
	default:
		return nil
	}
}

// New allocates a Solver for n user nodes and the given arc list, validating
// input per §6/§7. supply must have length n and sum to ~0 (within
// opts.Epsilon*(n+1)); arc endpoints must lie in [0, n) with non-negative
// capacity. A nil opts uses DefaultOptions().
func New(n int, supply []float64, arcs []Arc, opts *Options) (*Solver, error) {
	if supply == nil {
		return nil, solveerr.New(solveerr.CodeNilInput, "supply vector is nil").WithField("supply")
	}
	if n < 0 {
		return nil, solveerr.Newf(solveerr.CodeInvalidArgument, "negative node count %d", n).WithField("n")
	}
	if len(supply) != n {
		return nil, solveerr.Newf(solveerr.CodeInvalidArgument, "supply has length %d, want %d", len(supply), n).WithField("supply")
	}

	var o Options
	if opts != nil {
		o = *opts
	} else {
		o = DefaultOptions()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
	if o.PricingStrategy == nil {
		o.PricingStrategy = &pricing.BlockSearch{}
	}

	m := len(arcs)
	maxAbsCost := 0.0
	for i, a := range arcs {
		if a.Source < 0 || a.Source >= n {
			return nil, solveerr.Newf(solveerr.CodeInvalidArgument, "arc %d: source %d out of range [0,%d)", i, a.Source, n).WithField("arcs")
		}
		if a.Target < 0 || a.Target >= n {
			return nil, solveerr.Newf(solveerr.CodeInvalidArgument, "arc %d: target %d out of range [0,%d)", i, a.Target, n).WithField("arcs")
		}
		if a.Capacity < 0 {
			return nil, solveerr.Newf(solveerr.CodeNegativeCapacity, "arc %d: negative capacity %v", i, a.Capacity).WithField("arcs")
		}
		if c := math.Abs(a.Cost); c > maxAbsCost && c < Inf {
			maxAbsCost = c
		}
	}

	supplySum := 0.0
	for _, s := range supply {
		supplySum += s
	}
	if math.Abs(supplySum) > o.Epsilon*float64(n+1) {
		return nil, solveerr.Newf(solveerr.CodeFlowImbalance, "supply sums to %v, want ~0", supplySum).WithField("supply")
	}

	if o.ArtCost <= 0 {
		o.ArtCost = maxAbsCost*float64(n+1) + 1
		if o.ArtCost < 1e6 {
			o.ArtCost = 1e6
		}
	}

	s := &Solver{
		n:        n,
		m:        m,
		root:     n,
		na:       m + n,
		options:  o,
		strategy: o.PricingStrategy,
	}
	s.allocate()
	s.loadInput(supply, arcs)
	return s, nil
}

func (s *Solver) allocate() {
	nn := s.n + 1
	s.supply = make([]float64, nn)
	s.parent = make([]int, nn)
	s.pred = make([]int, nn)
	s.forward = make([]bool, nn)
	s.thread = make([]int, nn)
	s.revThread = make([]int, nn)
	s.succNum = make([]int, nn)
	s.lastSucc = make([]int, nn)
	s.depth = make([]int, nn)
	s.pi = make([]float64, nn)

	s.arcSource = make([]int, s.na)
	s.arcTarget = make([]int, s.na)
	s.arcCost = make([]float64, s.na)
	s.arcCapacity = make([]float64, s.na)
	s.arcFlow = make([]float64, s.na)
	s.arcState = make([]ArcState, s.na)
}

func (s *Solver) loadInput(supply []float64, arcs []Arc) {
	copy(s.supply, supply)
	for i, a := range arcs {
		s.arcSource[i] = a.Source
		s.arcTarget[i] = a.Target
		s.arcCost[i] = a.Cost
		cap := a.Capacity
		if cap >= Inf || math.IsInf(cap, 1) {
			cap = Inf
		}
		s.arcCapacity[i] = cap
		s.arcFlow[i] = 0
		s.arcState[i] = Lower
	}
}

// artificialArc returns the arc id of the artificial arc attached to user
// node u.
func (s *Solver) artificialArc(u int) int {
	return s.m + u
}

// isArtificial reports whether arcID refers to one of the N artificial
// root arcs rather than a user arc.
func (s *Solver) isArtificial(arcID int) bool {
	return arcID >= s.m
}

// reducedCost returns c(i,j) + pi(i) - pi(j) for the given arc, unsigned by
// arc state.
func (s *Solver) reducedCost(arcID int) float64 {
	i := s.arcSource[arcID]
	j := s.arcTarget[arcID]
	return s.arcCost[arcID] + s.pi[i] - s.pi[j]
}

// SignedReducedCost implements pricing.Graph: r(e) = state(e) * reducedCost(e).
func (s *Solver) SignedReducedCost(arcID int) float64 {
	return float64(s.arcState[arcID]) * s.reducedCost(arcID)
}

// Tolerance implements pricing.Graph: eps * max(|pi(i)|, |pi(j)|, |cost|).
func (s *Solver) Tolerance(arcID int) float64 {
	i := s.arcSource[arcID]
	j := s.arcTarget[arcID]
	a := math.Abs(s.pi[i])
	if v := math.Abs(s.pi[j]); v > a {
		a = v
	}
	if v := math.Abs(s.arcCost[arcID]); v > a {
		a = v
	}
	return s.options.Epsilon * a
}

// ArcCount implements pricing.Graph: only user arcs are priced.
func (s *Solver) ArcCount() int {
	return s.m
}
