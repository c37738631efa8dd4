// Package tsp implements an exact branch-and-bound solver for the
// asymmetric Traveling Salesperson Problem over a cost function on
// 0..n-1, plus two lightweight baselines (nearest-neighbour greedy and
// randomized restarts) for comparison.
//
// # Algorithm
//
//	BranchAndBound — best-first search over partial paths.
//	  Bound:  row/column reduced-matrix lower bound, recomputed on each
//	          branch from the parent's reduced residual matrix.
//	  Order:  a priority frontier keyed by (bound ascending, depth
//	          descending, insertion order), implemented over
//	          container/heap.
//	  Seed:   a nearest-neighbour tour from every start city primes the
//	          incumbent before search begins, so early pruning is
//	          effective from the first pop.
//	  Time:   exponential worst case; bounded in practice by the time
//	          allowance passed to BranchAndBound.
//
//	Greedy — nearest-neighbour from every start city, keeps the first
//	feasible tour found. No frontier, no statistics.
//
//	DefaultRandomTour — draws random permutations of the non-root
//	cities from a deterministic stream until one closes into a
//	feasible tour or the time allowance elapses.
//
// # Determinism
//
//   - No time-based randomness. DefaultRandomTour draws from
//     Options.Seed; Seed==0 maps to a fixed default stream.
//   - Tie-breaks in both branching order and frontier order are by
//     ascending city index / insertion sequence, never map iteration.
//
// # Input requirements
//
// A Scenario (see package scenario) must have at least 2 cities and a
// cost function with exactly costmat.Inf on the diagonal (scenario.New
// rejects anything else); off-diagonal Inf marks a missing directed edge and is
// permitted.
//
// # Errors
//
// Setup is the only fallible entry point. The search methods return a bare
// Results, never an error: infeasibility, deadline expiry, and proven
// optimality are reported through Results.Cost (costmat.Inf for infeasible)
// and Results.Soln (nil for infeasible). Calling a search method before
// Setup, or with a negative time allowance, is programmer misuse and
// panics with ErrNotSetup / ErrInvalidTimeAllowance rather than returning
// an error a caller would need to branch on.
package tsp
