package scenario

import "errors"

// Sentinel errors for the scenario package.
var (
	// ErrTooFewCities indicates n < 2 was passed to New.
	ErrTooFewCities = errors.New("scenario: fewer than 2 cities")

	// ErrNilCostFunc indicates a nil CostFunc was passed to New. tsp's
	// Solver.Setup also returns it when given a nil *Scenario.
	ErrNilCostFunc = errors.New("scenario: cost function is nil")

	// ErrSelfCost indicates cost(i, i) != costmat.Inf for some city i.
	ErrSelfCost = errors.New("scenario: self-cost must be infinite")

	// ErrNegativeCost indicates a negative finite cost was encountered.
	ErrNegativeCost = errors.New("scenario: negative cost encountered")

	// ErrAttrCountMismatch indicates len(attrs) != n.
	ErrAttrCountMismatch = errors.New("scenario: attribute count mismatch")
)
