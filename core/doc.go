// Package core provides the thread-safe in-memory Graph substrate the
// treewidth engine adapts its input from (see cliquegraph.FromCoreGraph) and
// that package components reuses directly (via bfs.BFS) to split a graph
// into connected components.
//
// Only the surface this module actually exercises is kept: the original
// lvlath Graph's weighted-edge, per-edge-direction-override, metadata, and
// degree-accounting machinery have no counterpart in the treewidth domain
// (§3 of the spec: "Attributes on vertices/edges are irrelevant to the
// algorithm; only topology matters") and have been trimmed. What remains:
//
//   - Directed vs. undirected edges (WithDirected) — kept so
//     cliquegraph.FromCoreGraph can reject a directed graph as out of scope,
//     exercised by cliquegraph's own negative-path tests.
//   - Parallel edges / multi-graphs (WithMultiEdges) — same: kept for the
//     adapter's rejection path.
//   - Self-loops (WithLoops) — same.
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …), used by
//     ktree to delete specific sampled edges by ID.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj) to minimize lock contention under concurrency.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Sets the orientation of every edge in the graph.
//	    • Directed graphs store only "from→to" pointers.
//	    • Undirected graphs mirror edges in adjacencyList[to][from].
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(deg(v)+M)
//
//	// Edge lifecycle
//	AddEdge(from,to string, weight int64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error   // O(1)
//	HasEdge(from,to string) bool      // O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)   // O(d·log d), loops appear once, multi-edges repeated
//	NeighborIDs(id string) ([]string, error)// O(d·log d), unique, sorted
//	Vertices() []string                      // O(V·log V)
//	Edges() []*Edge                          // O(E·log E)
//	VertexCount() int                        // O(1)
//
//	// Configuration queries
//	Directed() bool, Looped() bool, Multigraph() bool
//
// Edge struct fields:
//
//	ID     string   // "e1", "e2", …
//	From   string   // source vertex ID
//	To     string   // destination vertex ID
//	Weight int64    // unused by this module, kept for wire-compatible AddEdge calls
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
