// Package treewidth computes upper-bound tree decompositions of a graph via
// a clique-graph intersection heuristic: enumerate (bounded) maximal
// cliques, build their intersection graph, grow a spanning tree over it
// under one of seven fill strategies, and report its width.
package treewidth
