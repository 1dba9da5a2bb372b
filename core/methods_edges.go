// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges.
//       Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by Edge.ID asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - Edges() returns deterministic order by Edge.ID asc (stable logs/goldens).

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form is intentional to allow append to a []byte buffer without fmt.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight, honoring the
// graph's directed/loop/multi-edge configuration.
//
// AI-HINT:
//   - If Looped()==false and from==to, this returns ErrLoopNotAllowed.
//   - If Multigraph()==false and (from,to) already has an edge, this returns ErrMultiEdgeNotAllowed.
//
// Steps:
//  1. Validate IDs, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically.
//  5. Store in g.edges.
//  6. ensureAdjacency(from,to); add.
//  7. If !g.directed && from!=to ⇒ ensureAdjacency(to,from); add (mirror).
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
// Concurrency:
//   - Validates/creates vertices outside muEdgeAdj; adjacency and edge catalog under muEdgeAdj.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops { // loop constraint
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti { // Multi-edge existence check
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 4) Generate a new unique textual edge ID in O(1) without fmt allocations.
	eid := nextEdgeID(g)

	e := &Edge{ID: eid, From: from, To: to, Weight: weight}

	// 5) Store and link adjacency
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// 6) Mirror undirected
	if !g.directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
// Steps:
//  1. Lock muEdgeAdj.
//  2. Lookup e, ErrEdgeNotFound if missing.
//  3. delete(g.edges, eid), removeAdjacency(e), cleanupAdjacency().
//
// Complexity: O(1) removal + O(V+E) cleanup in degenerate cases (many empty buckets).
// Concurrency: acquires muEdgeAdj write lock only.
func (g *Graph) RemoveEdge(eid string) error {
	// AI-HINT: Removing an absent edge returns ErrEdgeNotFound (no silent ignore).

	// Lock edges+adjacency
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	// Fetch edge
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)  // Delete from global edges map
	removeAdjacency(g, e) // Remove from adjacencyList[from][to] and, if undirected, its mirror
	cleanupAdjacency(g)   // Prune empty nested maps

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
//
// Determinism: constant-time membership via nested maps; no allocations.
// Works for undirected graphs as AddEdge mirrors adjacency automatically.
// Complexity: O(1).
// Concurrency: read lock on muEdgeAdj.
func (g *Graph) HasEdge(from, to string) bool {
	// AI-HINT: O(1) membership by adjacency; undirected edges are mirrored, so HasEdge works both ways.
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Edges returns all edges sorted by Edge.ID asc (stable, deterministic order).
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
// Concurrency: read lock on muEdgeAdj.
func (g *Graph) Edges() []*Edge {
	// AI-HINT: Deterministic ordering by Edge.ID asc; rely on it for golden tests.
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
//
// Performance:
//   - Avoids fmt.Sprintf to remove heap churn in hot paths.
//
// Concurrency:
//   - Safe for concurrent callers; atomic.AddUint64 is used to fetch the next number.
func nextEdgeID(g *Graph) string {
	// AI-HINT: Monotonic textual IDs ("e1","e2",...).
	n := atomic.AddUint64(&g.nextEdgeID, 1) // atomically reserve the next sequence number
	buf := make([]byte, 0, 1+20)            // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)         // textual prefix
	buf = strconv.AppendUint(buf, n, 10)    // base-10 digits

	return string(buf) // convert to immutable string
}
