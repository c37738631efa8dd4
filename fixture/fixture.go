// Package fixture builds deterministic scenario.Scenario instances for
// tests, benchmarks, and the CLI, in the spirit of the wider module's
// builder-style constructors: every generator here is a pure function of
// its parameters (and, where stochastic, its seed), never of wall-clock
// time.
package fixture

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/briarlock/atspbb/costmat"
	"github.com/briarlock/atspbb/scenario"
)

// Sentinel errors returned by the generators in this package.
var (
	ErrTooFewCities       = errors.New("fixture: n must be >= 2")
	ErrInvalidProbability = errors.New("fixture: p must be in [0,1]")
)

// Complete builds a scenario over n cities where every directed edge i->j
// (i != j) has a finite cost drawn from [minCost, maxCost] via rng; the
// diagonal is Inf. rng == nil is treated as a fixed deterministic seed.
func Complete(n int, minCost, maxCost int64, rng *rand.Rand) (*scenario.Scenario, error) {
	if n < 2 {
		return nil, fmt.Errorf("fixture.Complete: n=%d: %w", n, ErrTooFewCities)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	span := maxCost - minCost + 1
	costs := make([]costmat.Cost, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				costs[i*n+j] = costmat.Inf
				continue
			}
			var v int64
			if span > 0 {
				v = minCost + rng.Int63n(span)
			} else {
				v = minCost
			}
			costs[i*n+j] = costmat.Cost(v)
		}
	}

	return scenario.New(n, func(i, j int) costmat.Cost { return costs[i*n+j] }, nil)
}

// RandomSparse builds a scenario over n cities where each off-diagonal
// directed edge i->j is present (finite cost in [minCost, maxCost]) with
// independent probability p, and Inf (missing edge) otherwise. The
// diagonal is always Inf. p must lie in [0,1]; rng == nil uses a fixed
// deterministic seed.
//
// RandomSparse does not guarantee the resulting scenario has any feasible
// tour; callers that need a guaranteed-feasible instance should use
// Complete or HamiltonianPlusNoise instead.
func RandomSparse(n int, p float64, minCost, maxCost int64, rng *rand.Rand) (*scenario.Scenario, error) {
	if n < 2 {
		return nil, fmt.Errorf("fixture.RandomSparse: n=%d: %w", n, ErrTooFewCities)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("fixture.RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	span := maxCost - minCost + 1
	costs := make([]costmat.Cost, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				costs[i*n+j] = costmat.Inf
				continue
			}
			if rng.Float64() >= p {
				costs[i*n+j] = costmat.Inf
				continue
			}
			var v int64
			if span > 0 {
				v = minCost + rng.Int63n(span)
			} else {
				v = minCost
			}
			costs[i*n+j] = costmat.Cost(v)
		}
	}

	return scenario.New(n, func(i, j int) costmat.Cost { return costs[i*n+j] }, nil)
}

// HamiltonianPlusNoise builds a scenario over n cities guaranteed to admit
// at least one feasible tour: it lays down a Hamiltonian cycle 0->1->...->
// n-1->0 with cost cycleCost per edge, fills every other off-diagonal
// entry with a random finite cost in [minCost, maxCost] (independently,
// with probability p of being present; absent entries are Inf), and
// leaves the diagonal Inf. Edges already on the guaranteed cycle are never
// overwritten, so the seeded cycle always survives.
func HamiltonianPlusNoise(n int, cycleCost, minCost, maxCost int64, p float64, rng *rand.Rand) (*scenario.Scenario, error) {
	if n < 2 {
		return nil, fmt.Errorf("fixture.HamiltonianPlusNoise: n=%d: %w", n, ErrTooFewCities)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("fixture.HamiltonianPlusNoise: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	onCycle := make(map[[2]int]bool, n)
	for i := 0; i < n; i++ {
		onCycle[[2]int{i, (i + 1) % n}] = true
	}

	span := maxCost - minCost + 1
	costs := make([]costmat.Cost, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				costs[i*n+j] = costmat.Inf
			case onCycle[[2]int{i, j}]:
				costs[i*n+j] = costmat.Cost(cycleCost)
			case rng.Float64() < p:
				var v int64
				if span > 0 {
					v = minCost + rng.Int63n(span)
				} else {
					v = minCost
				}
				costs[i*n+j] = costmat.Cost(v)
			default:
				costs[i*n+j] = costmat.Inf
			}
		}
	}

	return scenario.New(n, func(i, j int) costmat.Cost { return costs[i*n+j] }, nil)
}
