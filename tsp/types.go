package tsp

import (
	"errors"
	"time"

	"github.com/briarlock/atspbb/costmat"
)

// Sentinel errors. Setup is the only fallible entry point in the Solver API;
// every other operation reports its outcome through Results.
var (
	// ErrNotSetup indicates a search method was called before Setup.
	ErrNotSetup = errors.New("tsp: solver has not been set up")

	// ErrInvalidTimeAllowance indicates a negative time allowance was given.
	ErrInvalidTimeAllowance = errors.New("tsp: time allowance must be >= 0")
)

// Options configures the branch-and-bound driver. The zero value equals
// DefaultOptions(); override fields as needed.
type Options struct {
	// StartVertex anchors the tour; fixing a start city loses no generality
	// since a tour can be rotated to start anywhere. Default: 0.
	StartVertex int

	// BoundAlgo selects the lower-bound strategy. This module implements
	// only ReducedMatrixBound; the enum exists, as in the wider corpus'
	// branch-and-bound solvers, to document the extension point without
	// committing to a second bound implementation.
	BoundAlgo BoundAlgo

	// Seed controls the deterministic RNG used by DefaultRandomTour.
	Seed int64
}

// BoundAlgo selects the lower-bound policy used during search.
type BoundAlgo int

const (
	// ReducedMatrixBound is the row/column reduction lower bound.
	ReducedMatrixBound BoundAlgo = iota
)

// DefaultOptions returns Options with StartVertex=0, ReducedMatrixBound, and
// a fixed Seed=0 (deterministic by default).
func DefaultOptions() Options {
	return Options{
		StartVertex: 0,
		BoundAlgo:   ReducedMatrixBound,
		Seed:        0,
	}
}

// Results packages the outcome of a search. Max, Total, and Pruned are nil
// for DefaultRandomTour and Greedy, which do not maintain a search frontier.
type Results struct {
	// Cost is the incumbent tour cost, or costmat.Inf if none was found.
	Cost costmat.Cost

	// Time is the wall-clock duration the search ran for.
	Time time.Duration

	// Count is the number of incumbent improvements made during
	// branch-and-bound (the C5 seed tour is not counted).
	Count int

	// Soln is the incumbent tour as an ordered city list, or nil.
	Soln []int

	// Max is the high-water mark of frontier size, or nil when not tracked.
	Max *int

	// Total is the number of search nodes created, or nil when not tracked.
	Total *int

	// Pruned is the number of nodes discarded by pruning, or nil when not
	// tracked.
	Pruned *int
}

// Stats accumulates branch-and-bound statistics during a single run. It is
// a field on bbDriver, not process-global state.
type Stats struct {
	MaxFrontier int
	Created     int
	Pruned      int
	Solutions   int
}
