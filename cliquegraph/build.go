package cliquegraph

import "sort"

// Index maps an original-graph vertex id to the set of CG node ids whose
// bag contains it: u ∈ Bag(b) ⇔ b ∈ Index[u].
type Index map[int]map[int]struct{}

// Add records that CG node cgID's bag contains original vertex u.
func (idx Index) Add(u, cgID int) {
	set, ok := idx[u]
	if !ok {
		set = make(map[int]struct{})
		idx[u] = set
	}
	set[cgID] = struct{}{}
}

// NodesFor returns, in ascending order, the CG node ids whose bag contains u.
func (idx Index) NodesFor(u int) []int {
	set := idx[u]
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// Build constructs the intersection graph of cliques: one node per bag, an
// edge between any two bags sharing at least one member, weighted by wf.
// Θ(|cliques|² · avg-bag-size).
func Build(cliques []Bag, wf WeightFunc) *Graph {
	cg, _ := buildInternal(cliques, wf, false)
	return cg
}

// BuildWithIndex constructs the same graph as Build, additionally returning
// the inverted index from original vertex id to containing CG node ids.
func BuildWithIndex(cliques []Bag, wf WeightFunc) (*Graph, Index) {
	return buildInternal(cliques, wf, true)
}

func buildInternal(cliques []Bag, wf WeightFunc, withIndex bool) (*Graph, Index) {
	cg := New()
	var idx Index
	if withIndex {
		idx = make(Index)
	}

	ids := make([]int, 0, len(cliques))
	for _, clique := range cliques {
		id := cg.AddNode(clique)
		ids = append(ids, id)

		if withIndex {
			for _, v := range clique.Sorted() {
				idx.Add(v, id)
			}
		}

		for _, other := range ids[:len(ids)-1] {
			a, b := cg.Bag(id), cg.Bag(other)
			if a.Intersects(b) {
				cg.AddEdge(id, other, wf(a, b))
			}
		}
	}

	return cg, idx
}
