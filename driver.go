package netsimplex

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("github.com/flowmetric/netsimplex")

// pivot runs one full entering-arc cycle: join, leaving-arc/delta plan,
// augmentation, and — unless the pivot turned out degenerate — tree
// restructure and potential update (§4.5-§4.8). It returns false if the
// cycle is unbounded (delta hit Inf without any tree arc bounding it),
// which the caller must treat as terminal.
func (s *Solver) pivot(inArc int) bool {
	k := s.arcSource[inArc]
	l := s.arcTarget[inArc]
	join := s.findJoin(k, l)
	plan := s.planPivot(inArc, join)
	if plan.delta >= Inf {
		return false
	}

	s.augment(inArc, plan)
	s.stats.Pivots++

	if s.log != nil {
		s.log.Debug("pivot",
			"arc", inArc,
			"leaving_arc", plan.leavingArc,
			"delta", plan.delta,
			"degenerate", plan.degenerate,
			"iteration", s.stats.Pivots,
		)
	}

	if !plan.degenerate {
		s.restructure(inArc, plan.uIn, plan.vIn, plan.uOut)
		s.updatePotentials(inArc, plan.uIn, plan.vIn)
		s.stats.RestructureOps++
	}
	return true
}

// run executes initBasis, the heuristic seed pivots, and the main pivot
// loop driven by the configured pricing strategy to termination (§4.9). It does not build
// the Result or touch logging/tracing; see Solve for that wrapper.
func (s *Solver) run() Status {
	s.initBasis()
	s.heuristicPivots()

	iter := 0
	for {
		if s.options.MaxIter > 0 && iter >= s.options.MaxIter {
			return StatusMaxIterReached
		}

		arc, ok := s.strategy.FindEntering(s)
		s.stats.BlockScans++
		if !ok {
			break
		}

		if !s.pivot(arc) {
			return StatusUnbounded
		}
		iter++
	}

	for u := 0; u < s.n; u++ {
		if s.arcFlow[s.artificialArc(u)] > s.options.Epsilon {
			return StatusInfeasible
		}
	}
	return StatusOptimal
}

// iterations reports how many pricing-loop pivots run executed, derived
// from Stats rather than tracked separately.
func (s *Solver) iterations() int {
	return s.stats.Pivots - s.stats.HeuristicPivots
}

// Solve runs the Network Simplex pivot engine to completion and returns the
// resulting flow, node potentials, and status (§4.9, §6). ctx is used only
// for a request-scoped trace span and structured log fields — cancellation
// mid-solve is not supported (§5); once Solve starts, it runs to
// completion, MaxIter, or a terminal status.
//
// logger may be nil, in which case no records are emitted.
func (s *Solver) Solve(ctx context.Context, logger *slog.Logger) Result {
	requestID := uuid.New().String()

	ctx, span := tracer.Start(ctx, "netsimplex.Solve")
	defer span.End()

	if logger != nil {
		logger = logger.With("request_id", requestID)
		logger.InfoContext(ctx, "solve started", "nodes", s.n, "arcs", s.m)
	}
	s.log = logger

	status := s.run()

	totalCost := 0.0
	for e := 0; e < s.m; e++ {
		totalCost += s.arcFlow[e] * s.arcCost[e]
	}

	flows := make([]float64, s.m)
	copy(flows, s.arcFlow[:s.m])
	potentials := make([]float64, s.n)
	copy(potentials, s.pi[:s.n])

	result := Result{
		Status:         status,
		ArcFlows:       flows,
		NodePotentials: potentials,
		TotalCost:      totalCost,
		Iterations:     s.iterations(),
		Stats:          s.stats,
	}

	span.SetAttributes(
		attribute.String("netsimplex.request_id", requestID),
		attribute.String("netsimplex.status", status.String()),
		attribute.Int("netsimplex.iterations", result.Iterations),
	)
	if logger != nil {
		logger.InfoContext(ctx, "solve finished",
			"status", status.String(),
			"iterations", result.Iterations,
			"total_cost", totalCost,
			"pivots", s.stats.Pivots,
			"restructures", s.stats.RestructureOps,
		)
	}

	return result
}
