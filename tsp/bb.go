package tsp

import (
	"time"

	"github.com/briarlock/atspbb/costmat"
)

// bbDriver orchestrates expansion under a wall-clock budget (component C6).
// It owns the frontier, the current incumbent, and the run's statistics; all
// counters live on the struct, never on a package-level variable, so two
// solvers never interfere with each other.
type bbDriver struct {
	n     int
	cost  func(i, j int) costmat.Cost
	start int

	fr        *frontier
	incumbent Incumbent
	stats     Stats

	deadline time.Time
	hasDead  bool
}

// run executes the branch-and-bound loop to completion (the frontier
// empties) or until the deadline fires, whichever comes first. seed is the
// incumbent produced by component C5 before search begins.
func (d *bbDriver) run(initial *costmat.Matrix, seed Incumbent) {
	d.incumbent = seed
	d.fr = newFrontier()
	d.fr.push(newRoot(initial, d.start))

	for d.fr.Len() > 0 {
		if d.hasDead && time.Now().After(d.deadline) {
			return
		}

		if d.fr.Len() > d.stats.MaxFrontier {
			d.stats.MaxFrontier = d.fr.Len()
		}

		nd := d.fr.popMin()

		// Stale re-check: a node may have been pushed before a later
		// incumbent improvement invalidated it.
		if nd.bound >= d.incumbent.Cost {
			d.stats.Pruned++
			continue
		}

		for _, child := range nd.branch() {
			d.stats.Created++

			if child.isTour(d.n) {
				closing := d.cost(child.last(), d.start)
				if !closing.IsInf() {
					total := costmat.Add(tourPrefixCost(d.cost, child.path), closing)
					if total < d.incumbent.Cost {
						tour := append([]int(nil), child.path...)
						d.incumbent = Incumbent{Tour: tour, Cost: total}
						d.stats.Solutions++
						continue
					}
				}
				d.stats.Pruned++
				continue
			}

			if child.bound < d.incumbent.Cost {
				d.fr.push(child)
			} else {
				d.stats.Pruned++
			}
		}
	}
}

// tourPrefixCost sums the original-graph cost of consecutive edges along
// path (not closing it). Used to recompute a candidate tour's true cost
// from the scenario, never from a node's reduced matrix, so that reduction
// arithmetic can never leak into the reported answer.
func tourPrefixCost(cost func(i, j int) costmat.Cost, path []int) costmat.Cost {
	var total costmat.Cost
	for i := 0; i+1 < len(path); i++ {
		total = costmat.Add(total, cost(path[i], path[i+1]))
	}
	return total
}
