package clique

import (
	"sort"

	"github.com/katalvlaran/treewidth/cliquegraph"
)

// intSet is a small vertex-id set used internally by the enumerator. It
// mirrors Q (current clique), cand (candidates), and subg
// (adjacent-to-current-clique) from the Bron-Kerbosch-with-pivot
// description.
type intSet map[int]struct{}

func newSet(ids ...int) intSet {
	s := make(intSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s intSet) sorted() []int {
	out := make([]int, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func (s intSet) clone() intSet {
	cp := make(intSet, len(s))
	for id := range s {
		cp[id] = struct{}{}
	}
	return cp
}

func (s intSet) intersect(nbrs map[int]struct{}) intSet {
	out := make(intSet)
	for id := range s {
		if _, ok := nbrs[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

func (s intSet) without(id int) intSet {
	out := s.clone()
	delete(out, id)
	return out
}

// Maximal returns every maximal clique of g exactly once, in arbitrary but
// internally deterministic order (stable across repeated calls on the same
// graph, since every set walked here is resolved to a sorted slice before
// making a choice). An empty graph yields no cliques; an isolated vertex is
// itself a maximal clique of size one.
func Maximal(g cliquegraph.InputGraph) []cliquegraph.Bag {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return nil
	}

	adj := make(map[int]map[int]struct{}, len(vertices))
	for _, v := range vertices {
		nbrs := g.Neighbors(v)
		set := make(map[int]struct{}, len(nbrs))
		for _, n := range nbrs {
			set[n] = struct{}{}
		}
		adj[v] = set
	}

	var out []cliquegraph.Bag
	r := make(intSet)
	p := newSet(vertices...)
	x := make(intSet)

	var expand func(r, p, x intSet)
	expand = func(r, p, x intSet) {
		if len(p) == 0 && len(x) == 0 {
			out = append(out, cliquegraph.NewBag(r.sorted()...))
			return
		}

		// pivot: the vertex in p∪x maximising |N(u) ∩ p|.
		union := p.clone()
		for id := range x {
			union[id] = struct{}{}
		}
		pivot, best := -1, -1
		for _, u := range union.sorted() {
			cnt := len(p.intersect(adj[u]))
			if cnt > best {
				best, pivot = cnt, u
			}
		}

		promising := make(intSet)
		for id := range p {
			promising[id] = struct{}{}
		}
		if pivot >= 0 {
			for n := range adj[pivot] {
				delete(promising, n)
			}
		}

		pCur, xCur := p.clone(), x.clone()
		for _, v := range promising.sorted() {
			rNext := r.clone()
			rNext[v] = struct{}{}
			expand(rNext, pCur.intersect(adj[v]), xCur.intersect(adj[v]))
			delete(pCur, v)
			xCur[v] = struct{}{}
		}
	}

	expand(r, p, x)
	return out
}

// Bounded returns every maximal clique of size <= k verbatim, plus every
// size-k subset of every maximal clique larger than k, each unique up to
// set equality. Negative k is reinterpreted as k <- omega(G) + k, where
// omega(G) is the largest maximal clique's size. k == 0 yields nothing: no
// clique has size <= 0.
func Bounded(g cliquegraph.InputGraph, k int) []cliquegraph.Bag {
	maximal := Maximal(g)
	if len(maximal) == 0 {
		return nil
	}

	if k < 0 {
		omega := 0
		for _, c := range maximal {
			if c.Len() > omega {
				omega = c.Len()
			}
		}
		k = omega + k
	}
	if k <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var out []cliquegraph.Bag
	for _, c := range maximal {
		if c.Len() <= k {
			out = append(out, c)
			continue
		}
		for _, sub := range kSubsets(c.Sorted(), k) {
			bag := cliquegraph.NewBag(sub...)
			key := bag.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, bag)
		}
	}
	return out
}

// kSubsets enumerates every k-combination of sorted ids, in lexicographic
// order, via the standard combinatorial-index-advance algorithm.
func kSubsets(ids []int, k int) [][]int {
	n := len(ids)
	if k > n {
		return nil
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out [][]int
	for {
		combo := make([]int, k)
		for i, pos := range idx {
			combo[i] = ids[pos]
		}
		out = append(out, combo)

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
	return out
}
