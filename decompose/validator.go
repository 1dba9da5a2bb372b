package decompose

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/treewidth/cliquegraph"
)

// Diagnostic carries the structured payload produced when Check finds an
// axiom violation: the offending bags, the vertices missing along a path,
// the full path, and, when a predecessor map was supplied, the depth and
// parent of every node on that path and the set of CG bags containing each
// missing vertex.
type Diagnostic struct {
	Axiom         string // "T1", "T2", or "T3"
	Vertex        int    // offending vertex, for T1/T3
	Edge          [2]int // offending edge, for T2
	Path          []int
	MissingAt     []int       // T-node ids on Path missing the expected vertex/intersection
	Depths        map[int]int // path node id -> depth, when pred was supplied
	Parents       map[int]int // path node id -> parent id, when pred was supplied
	ContainingCG  []int       // CG node ids whose bag contains the offending vertex, when idx was supplied
}

// Summary renders a one-line, human-readable diagnostic.
func (d *Diagnostic) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s violated", d.Axiom)
	switch d.Axiom {
	case "T1":
		fmt.Fprintf(&b, ": vertex %d appears in no bag", d.Vertex)
	case "T2":
		fmt.Fprintf(&b, ": edge (%d,%d) shares no bag", d.Edge[0], d.Edge[1])
	case "T3":
		fmt.Fprintf(&b, ": vertex %d missing from bags %v on path %v", d.Vertex, d.MissingAt, d.Path)
	}
	if len(d.ContainingCG) > 0 {
		fmt.Fprintf(&b, "; present in CG nodes %v", d.ContainingCG)
	}
	return b.String()
}

// Check verifies T1, T2, and T3 of t against the original graph g. pred and
// idx are optional: when non-nil, a T3 violation's Diagnostic is enriched
// with path depths/parents and the CG nodes that still carry the missing
// vertex. Check returns (nil, nil) when t satisfies all three axioms.
func Check(g cliquegraph.InputGraph, t *cliquegraph.Graph, pred PredMap, idx cliquegraph.Index) (*AxiomError, error) {
	covered := make(map[int]struct{})
	tids := t.NodeIDs()
	for _, tid := range tids {
		for _, v := range t.Bag(tid).Sorted() {
			covered[v] = struct{}{}
		}
	}

	for _, v := range g.Vertices() {
		if _, ok := covered[v]; !ok {
			d := &Diagnostic{Axiom: "T1", Vertex: v}
			if idx != nil {
				d.ContainingCG = idx.NodesFor(v)
			}
			return &AxiomError{Diagnostic: d}, ErrAxiomViolation
		}
	}

	for _, u := range g.Vertices() {
		for _, v := range g.Neighbors(u) {
			if u >= v {
				continue // undirected; visit each pair once
			}
			if !sharesBag(t, tids, u, v) {
				d := &Diagnostic{Axiom: "T2", Edge: [2]int{u, v}}
				return &AxiomError{Diagnostic: d}, ErrAxiomViolation
			}
		}
	}

	for i := 0; i < len(tids); i++ {
		for j := i + 1; j < len(tids); j++ {
			a, b := tids[i], tids[j]
			inter := t.Bag(a).Intersection(t.Bag(b))
			if inter.Len() == 0 {
				continue
			}
			path := uniquePath(t, a, b)
			if path == nil {
				panic(ErrUnreachable)
			}
			for _, n := range path[1 : len(path)-1] {
				bag := t.Bag(n)
				var missing []int
				for _, v := range inter.Sorted() {
					if !bag.Has(v) {
						missing = append(missing, v)
					}
				}
				if len(missing) > 0 {
					d := &Diagnostic{
						Axiom:     "T3",
						Vertex:    missing[0],
						Path:      path,
						MissingAt: []int{n},
					}
					if pred != nil {
						d.Depths = make(map[int]int, len(path))
						d.Parents = make(map[int]int, len(path))
						for _, p := range path {
							d.Depths[p] = pred[p].Depth
							d.Parents[p] = pred[p].Parent
						}
					}
					if idx != nil {
						d.ContainingCG = idx.NodesFor(missing[0])
					}
					return &AxiomError{Diagnostic: d}, ErrAxiomViolation
				}
			}
		}
	}

	return nil, nil
}

func sharesBag(t *cliquegraph.Graph, tids []int, u, v int) bool {
	for _, tid := range tids {
		bag := t.Bag(tid)
		if bag.Has(u) && bag.Has(v) {
			return true
		}
	}
	return false
}
