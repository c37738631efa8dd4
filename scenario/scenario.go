// Package scenario is the cost graph adapter (component C1): it presents a
// set of cities indexed 0..n-1 together with an asymmetric, possibly
// incomplete cost function, and produces the dense initial cost matrix the
// branch-and-bound engine in package tsp operates on.
//
// A Scenario is immutable once constructed: there is no mutation API after
// New returns, matching the "logically immutable after setup"
// concurrency note for the cost graph.
package scenario

import "github.com/briarlock/atspbb/costmat"

// City is a single node in the scenario: an index into [0, N) plus an
// opaque attribute bag the caller may use for anything the solver itself
// does not interpret (coordinates from an external geometric generator,
// display names, etc).
type City struct {
	Index int
	Attrs map[string]any
}

// CostFunc computes the directed cost of travelling from city i to city j.
// Implementations must return costmat.Inf for i == j and may return
// costmat.Inf for any other pair to represent a missing edge. Costs must
// never be negative.
type CostFunc func(i, j int) costmat.Cost

// Scenario binds a fixed number of cities to a cost function.
type Scenario struct {
	cities []City
	cost   CostFunc
}

// New validates and constructs a Scenario over n cities (indices 0..n-1)
// using cost to look up edge weights. attrs, if non-nil, must have exactly
// n entries; attrs[i] becomes City.Attrs for city i.
//
// Degenerate input (n < 2) is rejected. n == 2 is accepted but produces
// only a trivial tour.
func New(n int, cost CostFunc, attrs []map[string]any) (*Scenario, error) {
	if n < 2 {
		return nil, ErrTooFewCities
	}
	if cost == nil {
		return nil, ErrNilCostFunc
	}
	if attrs != nil && len(attrs) != n {
		return nil, ErrAttrCountMismatch
	}

	cities := make([]City, n)
	for i := 0; i < n; i++ {
		if cost(i, i) != costmat.Inf {
			return nil, ErrSelfCost
		}
		var a map[string]any
		if attrs != nil {
			a = attrs[i]
		}
		cities[i] = City{Index: i, Attrs: a}
	}

	return &Scenario{cities: cities, cost: cost}, nil
}

// N returns the number of cities.
func (s *Scenario) N() int { return len(s.cities) }

// City returns the City at index i.
func (s *Scenario) City(i int) City { return s.cities[i] }

// Cost returns the directed cost of the edge i->j, as defined at
// construction time. Never mutates.
func (s *Scenario) Cost(i, j int) costmat.Cost { return s.cost(i, j) }

// Matrix materializes the scenario's initial n×n dense cost matrix
// (component C1's "direct population" contract). No further mutation is
// performed: reduction happens downstream in package tsp/costmat.
func (s *Scenario) Matrix() (*costmat.Matrix, error) {
	n := s.N()
	m, err := costmat.NewMatrix(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue // already Inf from NewMatrix
			}
			c := s.cost(i, j)
			if c < 0 {
				return nil, ErrNegativeCost
			}
			if err := m.Set(i, j, c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
