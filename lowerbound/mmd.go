// Package lowerbound computes the maximum-minimum-degree-plus (MMD+)
// contraction-degeneracy estimate, a guaranteed lower bound on treewidth
// used by package ktree to reject samples whose generated treewidth isn't
// exactly the requested k.
package lowerbound

import (
	"sort"

	"github.com/katalvlaran/treewidth/cliquegraph"
)

// MaximumMinimumDegreePlus repeatedly contracts the minimum-degree vertex
// with its "least common neighbour" neighbour, tracking the running maximum
// of the minimum degree seen. Ids used for contracted (synthetic) vertices
// are allocated past the input's own id range so they never collide.
func MaximumMinimumDegreePlus(g cliquegraph.InputGraph) int {
	adj := make(map[int]map[int]struct{})
	nextID := 0
	for _, v := range g.Vertices() {
		set := make(map[int]struct{})
		for _, n := range g.Neighbors(v) {
			set[n] = struct{}{}
		}
		adj[v] = set
		if v >= nextID {
			nextID = v + 1
		}
	}

	maxMin := 0
	for len(adj) >= 2 {
		v := minDegreeVertex(adj)
		deg := len(adj[v])
		if deg > maxMin {
			maxMin = deg
		}

		// An isolated vertex has no neighbour to contract with; dropping it
		// is the only sound move and still shrinks the graph, so the loop
		// keeps making progress instead of re-selecting it forever.
		if deg == 0 {
			delete(adj, v)
			continue
		}

		w := leastCommonNeighbourNeighbour(adj, v)

		merged := make(map[int]struct{})
		for n := range adj[v] {
			if n != w {
				merged[n] = struct{}{}
			}
		}
		for n := range adj[w] {
			if n != v {
				merged[n] = struct{}{}
			}
		}

		newID := nextID
		nextID++

		for n := range merged {
			delete(adj[n], v)
			delete(adj[n], w)
			adj[n][newID] = struct{}{}
		}
		delete(adj, v)
		delete(adj, w)
		adj[newID] = merged
	}

	return maxMin
}

// minDegreeVertex returns the vertex of minimum degree, breaking ties by
// the smallest id for determinism.
func minDegreeVertex(adj map[int]map[int]struct{}) int {
	best, bestDeg := -1, -1
	for _, id := range sortedKeys(adj) {
		deg := len(adj[id])
		if bestDeg == -1 || deg < bestDeg || (deg == bestDeg && id < best) {
			best, bestDeg = id, deg
		}
	}
	return best
}

// leastCommonNeighbourNeighbour returns the neighbour of v sharing the
// fewest common neighbours with v, breaking ties by the smallest id.
func leastCommonNeighbourNeighbour(adj map[int]map[int]struct{}, v int) int {
	vNeighbours := adj[v]
	best, bestScore := -1, -1
	for _, w := range sortedIDs(vNeighbours) {
		score := 0
		for n := range adj[w] {
			if _, ok := vNeighbours[n]; ok && n != v {
				score++
			}
		}
		if bestScore == -1 || score < bestScore || (score == bestScore && w < best) {
			best, bestScore = w, score
		}
	}
	return best
}

func sortedKeys(adj map[int]map[int]struct{}) []int {
	out := make([]int, 0, len(adj))
	for id := range adj {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func sortedIDs(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
