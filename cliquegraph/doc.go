// Package cliquegraph provides the bag-carrying graph substrate shared by
// the clique graph and the tree decompositions built from it: a weighted
// undirected graph whose node weights are vertex-id bags and whose edge
// weights satisfy the Weight interface, plus a thin read-only adapter over
// core.Graph for the original input graph.
//
// Both CG (the clique/intersection graph) and T (a tree decomposition)
// are represented by the same Graph type; only the edge subset differs.
package cliquegraph
