package tsp

import "github.com/briarlock/atspbb/costmat"

// node is a search-tree node (component C3): a partial path, its reduced
// residual cost matrix, and the lower bound on any completion through that
// path. Nodes are owned exclusively by the frontier (package-level queue.go)
// and are dropped on pop; there is no separate node pool or reuse.
type node struct {
	mat   *costmat.Matrix // reduced residual matrix
	bound costmat.Cost    // B_N: lower bound on any completion
	path  []int           // P_N: partial path, path[0] == root start city
	level int             // len(path) - 1
	seq   uint64          // insertion sequence, used as a deterministic tie-break
}

// newRoot builds the root search node from the scenario's initial matrix.
// It performs the first reduction and sets B_root to the resulting delta.
func newRoot(initial *costmat.Matrix, start int) *node {
	m := initial.Clone()
	delta := m.Reduce()
	return &node{
		mat:   m,
		bound: delta,
		path:  []int{start},
		level: 0,
	}
}

// last returns the most recently visited city on this node's partial path.
func (nd *node) last() int { return nd.path[len(nd.path)-1] }

// visited reports whether city j already appears on the partial path.
func (nd *node) visited(j int) bool {
	for _, p := range nd.path {
		if p == j {
			return true
		}
	}
	return false
}

// branch produces one child node per unvisited city j, in ascending index
// order. Each child:
//  1. clones the parent matrix,
//  2. masks row i=last(), column j, and the premature-closing entry
//     (j, path[0]) to Inf,
//  3. reduces the masked matrix, accumulating delta,
//  4. sets B_child = B_parent + M_parent[i,j] + delta in one combined step,
//     so the parent's bound is never counted twice,
//  5. owns an independent copy of the path; it never aliases the parent's
//     path slice.
//
// branch short-circuits children whose edge (i, j) is already Inf in the
// parent matrix, since their bound would be Inf regardless of reduction.
func (nd *node) branch() []*node {
	n := nd.mat.N()
	i := nd.last()
	root := nd.path[0]

	children := make([]*node, 0, n-nd.level-1)
	for j := 0; j < n; j++ {
		if j == i || nd.visited(j) {
			continue
		}
		edgeCost, _ := nd.mat.At(i, j)
		if edgeCost.IsInf() {
			continue
		}

		childMat := nd.mat.Clone()
		childMat.InfRow(i)
		childMat.InfCol(j)
		_ = childMat.Set(j, root, costmat.Inf)

		delta := childMat.Reduce()
		bound := costmat.Add(costmat.Add(nd.bound, edgeCost), delta)

		path := make([]int, len(nd.path)+1)
		copy(path, nd.path)
		path[len(nd.path)] = j

		children = append(children, &node{
			mat:   childMat,
			bound: bound,
			path:  path,
			level: nd.level + 1,
		})
	}
	return children
}

// isTour reports whether this node already represents a complete
// Hamiltonian path (level == n-1); closing feasibility is decided
// separately via the original scenario cost, not this node's reduced
// matrix.
func (nd *node) isTour(n int) bool { return nd.level == n-1 }
