// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.
// AI-HINT (file):
//   - Directed()/Looped()/Multigraph() expose the construction-time flags that
//     cliquegraph.FromCoreGraph checks before adapting a graph.

package core

// Directed reports whether every edge in the graph is directed.
//
// Contract:
//   - Returns the construction-time flag (immutable after NewGraph).
//   - Read is protected by muVert for consistent visibility.
//   - No allocations, no mutations.
//
// Complexity: O(1).
// Concurrency: safe; uses read lock.
func (g *Graph) Directed() bool {
	g.muVert.RLock()         // acquire read lock on vertex/config state
	defer g.muVert.RUnlock() // release lock via defer for clarity and safety

	return g.directed
}

// Looped reports whether the graph permits self-loops.
//
// Contract:
//   - Returns the construction-time flag (immutable after NewGraph).
//   - Read is protected by muVert for consistent visibility.
//   - No allocations, no mutations.
//
// Complexity: O(1).
// Concurrency: safe; uses read lock.
func (g *Graph) Looped() bool {
	// AI-HINT: If false, AddEdge(v,v,...) returns ErrLoopNotAllowed.
	g.muVert.RLock()         // acquire read lock on vertex/config state
	defer g.muVert.RUnlock() // release lock via defer for clarity and safety

	return g.allowLoops
}

// Multigraph reports whether this Graph permits parallel edges (multi-edges).
//
// Contract:
//   - Returns the construction-time flag (immutable after NewGraph).
//   - Read is protected by muVert for consistent visibility.
//   - No allocations, no mutations.
//
// Complexity: O(1).
// Concurrency: safe; uses read lock.
func (g *Graph) Multigraph() bool {
	// AI-HINT: If false, adding a second edge between same endpoints returns ErrMultiEdgeNotAllowed.
	g.muVert.RLock()         // acquire read lock on vertex/config state
	defer g.muVert.RUnlock() // ensure lock is released even on panic (there shouldn't be any)

	return g.allowMulti // return the immutable configuration flag
}
