// Package clique enumerates maximal cliques of a graph via Bron-Kerbosch
// with pivoting, and a bounded variant that additionally emits every
// size-k subclique of cliques larger than k.
package clique
