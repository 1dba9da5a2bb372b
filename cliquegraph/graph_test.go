package cliquegraph_test

import (
	"testing"

	"github.com/katalvlaran/treewidth/cliquegraph"
	"github.com/stretchr/testify/assert"
)

// intWeight is a minimal Weight for exercising Graph edges in isolation.
type intWeight int

func (v intWeight) Less(other cliquegraph.Weight) bool { return v < other.(intWeight) }

func TestGraph_AddNodeAndEdge(t *testing.T) {
	g := cliquegraph.New()
	n1 := g.AddNode(cliquegraph.NewBag(1, 2))
	n2 := g.AddNode(cliquegraph.NewBag(2, 3))

	g.AddEdge(n1, n2, intWeight(5))

	assert.True(t, g.HasEdge(n1, n2))
	assert.True(t, g.HasEdge(n2, n1)) // undirected
	w, ok := g.EdgeWeight(n1, n2)
	assert.True(t, ok)
	assert.Equal(t, intWeight(5), w)
	assert.Equal(t, []int{n2}, g.Neighbors(n1))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_AddEdgeOnUnknownNodePanics(t *testing.T) {
	g := cliquegraph.New()
	n1 := g.AddNode(cliquegraph.NewBag(1))
	assert.Panics(t, func() { g.AddEdge(n1, n1+1000, intWeight(0)) })
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := cliquegraph.New()
	n1 := g.AddNode(cliquegraph.NewBag(1))
	n2 := g.AddNode(cliquegraph.NewBag(2))
	g.AddEdge(n1, n2, intWeight(1))

	clone := g.Clone()
	clone.InsertIntoBag(n1, 99)

	assert.False(t, g.Bag(n1).Has(99))
	assert.True(t, clone.Bag(n1).Has(99))
}

func TestGraph_MaxBagSize(t *testing.T) {
	g := cliquegraph.New()
	assert.Equal(t, 0, g.MaxBagSize())
	g.AddNode(cliquegraph.NewBag(1, 2, 3))
	g.AddNode(cliquegraph.NewBag(4, 5))
	assert.Equal(t, 3, g.MaxBagSize())
}
