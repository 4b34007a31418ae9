package solverconfig

import (
	"github.com/flowmetric/netsimplex"
	"github.com/flowmetric/netsimplex/pricing"
)

// ToOptions converts the loaded SolverConfig into netsimplex.Options,
// wiring BlockSizeFloor into a fresh pricing.BlockSearch.
func (c SolverConfig) ToOptions() netsimplex.Options {
	return netsimplex.Options{
		ArtCost:         c.ArtCost,
		Epsilon:         c.Epsilon,
		MaxIter:         c.MaxIter,
		PricingStrategy: &pricing.BlockSearch{Floor: c.BlockSizeFloor},
	}
}
