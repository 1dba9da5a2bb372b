package cliquegraph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/treewidth/core"
)

// InputGraph is the minimal read-only view the engine needs of the original
// graph G: a dense vertex-id space with a neighbour oracle. Only topology
// matters; vertex/edge attributes are irrelevant to every algorithm here.
type InputGraph interface {
	Vertices() []int
	Neighbors(v int) []int
	HasEdge(u, v int) bool
	VertexCount() int
}

// denseGraph is the concrete InputGraph built by FromCoreGraph: a plain
// adjacency-set view over a dense integer vertex-id space.
type denseGraph struct {
	verts []int
	adj   map[int]map[int]struct{}
}

func (d *denseGraph) Vertices() []int { return d.verts }

func (d *denseGraph) Neighbors(v int) []int {
	nbrs := d.adj[v]
	out := make([]int, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

func (d *denseGraph) HasEdge(u, v int) bool {
	_, ok := d.adj[u][v]
	return ok
}

func (d *denseGraph) VertexCount() int { return len(d.verts) }

// FromCoreGraph adapts a core.Graph into a dense-int-id InputGraph. It
// returns the adapted graph together with the id/label mappings so callers
// can translate results back to the caller's own vertex identifiers.
//
// The engine works over simple graphs only: g must not be directed, and
// must not have been constructed with WithMultiEdges() or WithLoops(),
// since parallel edges and self-loops carry no information a tree
// decomposition needs to cover and would otherwise be silently discarded
// rather than flagged as a caller error.
//
// core.Graph uses string vertex ids; this adapter assigns dense ids 0..n-1
// in the order core.Graph.Vertices() already returns them (sorted,
// deterministic), so repeated adaptation of the same graph is stable.
func FromCoreGraph(g *core.Graph) (graph InputGraph, toLabel []string, toID map[string]int, err error) {
	if g == nil {
		return nil, nil, nil, fmt.Errorf("cliquegraph: nil graph")
	}
	if g.Directed() {
		return nil, nil, nil, fmt.Errorf("cliquegraph: directed graphs are out of scope")
	}
	if g.Multigraph() {
		return nil, nil, nil, fmt.Errorf("cliquegraph: multigraphs are out of scope")
	}
	if g.Looped() {
		return nil, nil, nil, fmt.Errorf("cliquegraph: graphs configured to allow self-loops are out of scope")
	}

	vertices := g.Vertices()
	toLabel = make([]string, len(vertices))
	toID = make(map[string]int, len(vertices))
	for i, id := range vertices {
		toLabel[i] = id
		toID[id] = i
	}

	d := &denseGraph{
		verts: make([]int, len(vertices)),
		adj:   make(map[int]map[int]struct{}, len(vertices)),
	}
	for i := range vertices {
		d.verts[i] = i
		d.adj[i] = make(map[int]struct{})
	}

	for _, e := range g.Edges() {
		// g.Looped() was rejected above, so AddEdge's ErrLoopNotAllowed
		// guarantee means e.From == e.To cannot occur here.
		u, v := toID[e.From], toID[e.To]
		d.adj[u][v] = struct{}{}
		d.adj[v][u] = struct{}{}
	}

	return d, toLabel, toID, nil
}

// Induced returns the InputGraph restricted to the given dense ids (a
// connected component, typically), re-densified to 0..len(ids)-1. The
// returned relabel slice maps the new dense id back to the id it had in g.
func Induced(g InputGraph, ids []int) (sub InputGraph, relabel []int) {
	keep := make(map[int]int, len(ids))
	relabel = make([]int, len(ids))
	for i, id := range ids {
		keep[id] = i
		relabel[i] = id
	}

	d := &denseGraph{
		verts: make([]int, len(ids)),
		adj:   make(map[int]map[int]struct{}, len(ids)),
	}
	for i := range ids {
		d.verts[i] = i
		d.adj[i] = make(map[int]struct{})
	}
	for _, id := range ids {
		newU := keep[id]
		for _, n := range g.Neighbors(id) {
			if newV, ok := keep[n]; ok {
				d.adj[newU][newV] = struct{}{}
			}
		}
	}
	return d, relabel
}
