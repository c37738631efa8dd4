// Command atspbb runs the asymmetric-TSP branch-and-bound solver against a
// randomly generated scenario and reports the result.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/briarlock/atspbb/fixture"
	"github.com/briarlock/atspbb/tsp"
)

func main() {
	n := flag.Int("n", 10, "number of cities")
	seed := flag.Int64("seed", 1, "fixture and solver RNG seed")
	timeAllowance := flag.Duration("time", 5*time.Second, "branch-and-bound time allowance (0 = run to exhaustion)")
	minCost := flag.Int64("min-cost", 1, "minimum edge cost")
	maxCost := flag.Int64("max-cost", 100, "maximum edge cost")
	mode := flag.String("mode", "bb", "search mode: bb, greedy, or random")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	sc, err := fixture.HamiltonianPlusNoise(*n, *maxCost, *minCost, *maxCost, 0.5, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Error("failed to build scenario", "error", err)
		os.Exit(1)
	}

	solver := tsp.NewSolverWithOptions(tsp.Options{
		StartVertex: 0,
		BoundAlgo:   tsp.ReducedMatrixBound,
		Seed:        *seed,
	})
	if err := solver.Setup(sc); err != nil {
		log.Error("failed to set up solver", "error", err)
		os.Exit(1)
	}

	log.Info("starting search", "mode", *mode, "cities", *n, "time_allowance", *timeAllowance)

	var res tsp.Results
	switch *mode {
	case "bb":
		res = solver.BranchAndBound(*timeAllowance)
	case "greedy":
		res = solver.Greedy(*timeAllowance)
	case "random":
		res = solver.DefaultRandomTour(*timeAllowance)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (want bb, greedy, or random)\n", *mode)
		os.Exit(2)
	}

	report(log, res)
}

func report(log *slog.Logger, res tsp.Results) {
	if res.Cost.IsInf() {
		log.Info("no feasible tour found", "elapsed", res.Time)
		return
	}

	attrs := []any{"cost", int64(res.Cost), "elapsed", res.Time, "improvements", res.Count, "tour", res.Soln}
	if res.Max != nil {
		attrs = append(attrs, "max_frontier", *res.Max, "nodes_created", *res.Total, "nodes_pruned", *res.Pruned)
	}
	log.Info("search complete", attrs...)
}
