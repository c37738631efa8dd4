package tsp

import "github.com/briarlock/atspbb/costmat"

// Incumbent is the best complete tour found so far (the "BSSF") plus its
// cost, used both to seed pruning before search begins and to report the
// final answer.
type Incumbent struct {
	Tour []int
	Cost costmat.Cost
}

// infeasible is the sentinel incumbent reported when no tour could be found
// at all.
func infeasible() Incumbent { return Incumbent{Tour: nil, Cost: costmat.Inf} }

// nearestNeighbourFrom runs one deterministic nearest-neighbour pass
// starting at city s: at each step it walks to the closest unvisited city
// (lowest index wins ties), and only succeeds if every step and the final
// closing edge back to s are finite.
func nearestNeighbourFrom(n int, cost func(i, j int) costmat.Cost, s int) (Incumbent, bool) {
	visited := make([]bool, n)
	visited[s] = true
	route := make([]int, 1, n)
	route[0] = s
	cur := s
	var total costmat.Cost

	for step := 0; step < n-1; step++ {
		best := -1
		var bestCost costmat.Cost = costmat.Inf
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			c := cost(cur, j)
			if c < bestCost {
				bestCost = c
				best = j
			}
		}
		if best == -1 || bestCost.IsInf() {
			return Incumbent{}, false
		}
		visited[best] = true
		route = append(route, best)
		total = costmat.Add(total, bestCost)
		cur = best
	}

	closing := cost(cur, s)
	if closing.IsInf() {
		return Incumbent{}, false
	}
	total = costmat.Add(total, closing)

	return Incumbent{Tour: route, Cost: total}, true
}

// greedyIncumbent is component C5: it tries nearest-neighbour from every
// start city in ascending order and keeps the first feasible tour found; it
// does not hunt for the best of the n attempts, only the first successful
// one, in index order.
func greedyIncumbent(n int, cost func(i, j int) costmat.Cost) Incumbent {
	for s := 0; s < n; s++ {
		if inc, ok := nearestNeighbourFrom(n, cost, s); ok {
			return inc
		}
	}
	return infeasible()
}
