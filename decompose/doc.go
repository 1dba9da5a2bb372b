// Package decompose implements the spanning-tree-and-fill engine: seven
// strategies that grow a spanning tree of the clique graph while filling
// its bags to satisfy the running-intersection property, plus the
// three-axiom decomposition validator and width measurement.
package decompose
