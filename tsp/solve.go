package tsp

import (
	"time"

	"github.com/briarlock/atspbb/costmat"
	"github.com/briarlock/atspbb/scenario"
)

// Solver is the asymmetric-TSP engine. It is configured once via Setup and
// can then run any number of searches against the same scenario. A Solver
// has no internal synchronization, so Setup must not run concurrently with
// a search. Each DefaultRandomTour call starts a fresh RNG stream from
// Options.Seed.
type Solver struct {
	opts Options

	sc   *scenario.Scenario
	done bool
}

// NewSolver returns a Solver configured with DefaultOptions. Call Setup
// before any search method.
func NewSolver() *Solver {
	return &Solver{opts: DefaultOptions()}
}

// NewSolverWithOptions returns a Solver configured with opts.
func NewSolverWithOptions(opts Options) *Solver {
	return &Solver{opts: opts}
}

// Setup binds the solver to sc. It is the only fallible entry point in the
// Solver API; every search method reports its outcome through Results.
func (s *Solver) Setup(sc *scenario.Scenario) error {
	if sc == nil {
		return scenario.ErrNilCostFunc
	}
	s.sc = sc
	s.done = true
	return nil
}

// mustBeReady panics with ErrNotSetup if Setup has not run and with
// ErrInvalidTimeAllowance if timeAllowance is negative. Both are programmer
// errors, not outcomes a caller needs to branch on, so they panic rather
// than return through Results.
func (s *Solver) mustBeReady(timeAllowance time.Duration) {
	if !s.done {
		panic(ErrNotSetup)
	}
	if timeAllowance < 0 {
		panic(ErrInvalidTimeAllowance)
	}
}

// BranchAndBound runs component C6 to exhaustion or until timeAllowance
// elapses, whichever comes first. A zero timeAllowance means "no deadline":
// the search runs until the frontier is proven empty.
func (s *Solver) BranchAndBound(timeAllowance time.Duration) Results {
	s.mustBeReady(timeAllowance)

	start := time.Now()
	n := s.sc.N()
	cost := s.sc.Cost

	initial, err := s.sc.Matrix()
	if err != nil {
		return Results{Cost: costmat.Inf, Time: time.Since(start)}
	}

	seed := greedyIncumbent(n, cost)

	d := &bbDriver{
		n:     n,
		cost:  cost,
		start: s.opts.StartVertex,
	}
	if timeAllowance > 0 {
		d.deadline = start.Add(timeAllowance)
		d.hasDead = true
	}

	d.run(initial, seed)

	return buildResults(d.incumbent, d.stats, time.Since(start))
}

// Greedy runs only component C5 (nearest-neighbour from every start city)
// and returns the first feasible tour found, trying start cities in
// ascending order, with no frontier statistics.
func (s *Solver) Greedy(timeAllowance time.Duration) Results {
	s.mustBeReady(timeAllowance)

	start := time.Now()
	inc := greedyIncumbent(s.sc.N(), s.sc.Cost)

	return Results{
		Cost:  inc.Cost,
		Time:  time.Since(start),
		Count: boolToCount(!inc.Cost.IsInf()),
		Soln:  inc.Tour,
	}
}

// DefaultRandomTour is component C6.2: it repeatedly draws random
// permutations of the non-root cities (deterministically, from the
// solver's seed) until it finds one whose every edge, including the
// closing edge, is finite, or timeAllowance elapses. A zero timeAllowance
// still allows at least one attempt.
func (s *Solver) DefaultRandomTour(timeAllowance time.Duration) Results {
	s.mustBeReady(timeAllowance)

	start := time.Now()
	n := s.sc.N()
	cost := s.sc.Cost
	root := s.opts.StartVertex
	rng := rngFromSeed(s.opts.Seed)

	deadline := start.Add(timeAllowance)
	hasDeadline := timeAllowance > 0

	best := infeasible()
	attempts := 0

	for {
		attempts++
		perm := randomPermutation(n, root, rng)
		route := make([]int, 0, n)
		route = append(route, root)
		route = append(route, perm...)

		if tourCost, ok := closedTourCost(cost, route); ok {
			best = Incumbent{Tour: route, Cost: tourCost}
			break
		}

		if hasDeadline && time.Now().After(deadline) {
			break
		}
		if !hasDeadline && attempts >= 1 {
			break
		}
	}

	return Results{
		Cost:  best.Cost,
		Time:  time.Since(start),
		Count: boolToCount(!best.Cost.IsInf()),
		Soln:  best.Tour,
	}
}

// closedTourCost sums route's edges and its closing edge back to route[0];
// ok is false if any edge, including the closing one, is infinite.
func closedTourCost(cost func(i, j int) costmat.Cost, route []int) (costmat.Cost, bool) {
	var total costmat.Cost
	for i := 0; i+1 < len(route); i++ {
		c := cost(route[i], route[i+1])
		if c.IsInf() {
			return costmat.Inf, false
		}
		total = costmat.Add(total, c)
	}
	closing := cost(route[len(route)-1], route[0])
	if closing.IsInf() {
		return costmat.Inf, false
	}
	return costmat.Add(total, closing), true
}

// buildResults assembles a Results from a finished branch-and-bound run.
func buildResults(final Incumbent, stats Stats, elapsed time.Duration) Results {
	maxF, total, pruned := stats.MaxFrontier, stats.Created, stats.Pruned
	return Results{
		Cost:   final.Cost,
		Time:   elapsed,
		Count:  stats.Solutions,
		Soln:   final.Tour,
		Max:    &maxF,
		Total:  &total,
		Pruned: &pruned,
	}
}

func boolToCount(b bool) int {
	if b {
		return 1
	}
	return 0
}
