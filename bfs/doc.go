// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order. It is
// components.Partition's traversal primitive for splitting an input graph
// into connected components (§4.2 of the spec) before each component's
// treewidth is computed independently.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs and connected components.
//
// Determinism
//
//	Because core.NeighborIDs returns neighbor IDs sorted ascending, and BFS
//	enqueues neighbors in that order, the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//		// Basic BFS with no options:
//		result, err := bfs.BFS(g, "start")
//		if err != nil {
//	      // handle one of:
//	      // ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors, or hook errors
//		}
//
//		// With functional options:
//		result, err := bfs.BFS(
//		    g, "start",
//		    bfs.WithContext(ctx),
//		    bfs.WithMaxDepth(3),
//		    bfs.WithFilterNeighbor(func(curr, nbr string) bool { return curr != "skip" }),
//		    bfs.WithOnEnqueue(func(id string, depth int) { /* ... */ }),
//		    bfs.WithOnDequeue(func(id string, depth int) { /* ... */ }),
//		    bfs.WithOnVisit(func(id string, depth int) error { /* ... */ return nil }),
//		)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a vertex.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
