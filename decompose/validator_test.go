package decompose_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/treewidth/cliquegraph"
	"github.com/katalvlaran/treewidth/core"
	"github.com/katalvlaran/treewidth/decompose"
	"github.com/stretchr/testify/assert"
)

type zeroWeight struct{}

func (zeroWeight) Less(cliquegraph.Weight) bool { return false }

// TestCheck_DetectsMissingCoverage builds a tree decomposition that omits
// vertex 3 entirely from every bag: T1 must fail.
func TestCheck_DetectsMissingCoverage(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"0", "1", "2", "3"} {
		assert.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("2", "3", 0)
	assert.NoError(t, err)
	input, _, _, err := cliquegraph.FromCoreGraph(g)
	assert.NoError(t, err)

	tree := cliquegraph.New()
	tree.AddNode(cliquegraph.NewBag(0, 1, 2))

	axErr, checkErr := decompose.Check(input, tree, nil, nil)
	assert.Error(t, checkErr)
	assert.True(t, errors.Is(axErr, decompose.ErrAxiomViolation))
	assert.Equal(t, "T1", axErr.Diagnostic.Axiom)
	assert.Equal(t, 3, axErr.Diagnostic.Vertex)
}

// TestCheck_DetectsMissingEdgeCoverage builds a decomposition whose bags
// never jointly carry the edge (1,2): T2 must fail.
func TestCheck_DetectsMissingEdgeCoverage(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"0", "1", "2"} {
		assert.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("1", "2", 0)
	assert.NoError(t, err)
	input, _, _, err := cliquegraph.FromCoreGraph(g)
	assert.NoError(t, err)

	tree := cliquegraph.New()
	n1 := tree.AddNode(cliquegraph.NewBag(0, 1))
	n2 := tree.AddNode(cliquegraph.NewBag(2))
	tree.AddEdge(n1, n2, zeroWeight{})

	axErr, checkErr := decompose.Check(input, tree, nil, nil)
	assert.Error(t, checkErr)
	assert.Equal(t, "T2", axErr.Diagnostic.Axiom)
	assert.Equal(t, [2]int{1, 2}, axErr.Diagnostic.Edge)
}

// TestCheck_DetectsRunningIntersectionViolation builds a path A-B-C where A
// and C both contain vertex 0 but B (the only internal node) does not: T3
// must fail.
func TestCheck_DetectsRunningIntersectionViolation(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"0"} {
		assert.NoError(t, g.AddVertex(v))
	}
	input, _, _, err := cliquegraph.FromCoreGraph(g)
	assert.NoError(t, err)

	tree := cliquegraph.New()
	a := tree.AddNode(cliquegraph.NewBag(0))
	b := tree.AddNode(cliquegraph.NewBag(1))
	c := tree.AddNode(cliquegraph.NewBag(0))
	tree.AddEdge(a, b, zeroWeight{})
	tree.AddEdge(b, c, zeroWeight{})

	axErr, checkErr := decompose.Check(input, tree, nil, nil)
	assert.Error(t, checkErr)
	assert.Equal(t, "T3", axErr.Diagnostic.Axiom)
	assert.Equal(t, 0, axErr.Diagnostic.Vertex)
}

// TestCheck_PassesOnAValidDecomposition is the negative-negative case: no
// violation, nil error.
func TestCheck_PassesOnAValidDecomposition(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"0", "1"} {
		assert.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("0", "1", 0)
	assert.NoError(t, err)
	input, _, _, err := cliquegraph.FromCoreGraph(g)
	assert.NoError(t, err)

	tree := cliquegraph.New()
	tree.AddNode(cliquegraph.NewBag(0, 1))

	axErr, checkErr := decompose.Check(input, tree, nil, nil)
	assert.NoError(t, checkErr)
	assert.Nil(t, axErr)
}
