// Package netsimplex implements a minimum-cost flow solver based on the
// Network Simplex method, used to compute the Earth Mover's Distance (EMD)
// between two discrete mass distributions over a sparse set of allowed
// transport arcs.
//
// Given a supply vector over source nodes, a demand vector over sink nodes
// with equal total mass, and an explicit list of directed arcs with
// per-unit costs and optional capacities, Solve returns an integral or
// real-valued flow that routes all supply to demand at provably minimum
// total cost, together with the dual node potentials.
//
// # Scope
//
// This package is the pivot engine only: spanning-tree basis maintenance,
// entering-arc pricing, cycle augmentation, tree restructuring, and
// potential updates. Problem ingestion (parsing cost matrices, sparsity
// masks), supply/demand balancing, and post-processing into a transport
// plan are the caller's responsibility — Solve operates on an already
// prepared arc list and supply vector.
//
// # Determinism
//
// Same input and same PricingStrategy configuration produce the same
// output. Reordering the arc list does not change the optimal cost, though
// it may change the pivot count.
//
// # Concurrency
//
// A Solver instance is single-threaded and synchronous: Solve must not be
// called concurrently on the same Solver, and no internal locking is
// performed. Each Solve call owns its arrays for the duration of the call.
package netsimplex
