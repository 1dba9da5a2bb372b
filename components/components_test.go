package components_test

import (
	"testing"

	"github.com/katalvlaran/treewidth/components"
	"github.com/katalvlaran/treewidth/core"
	"github.com/stretchr/testify/assert"
)

func TestPartition_SingleComponent(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C"} {
		assert.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("A", "B", 0)
	assert.NoError(t, err)
	_, err = g.AddEdge("B", "C", 0)
	assert.NoError(t, err)

	comps, err := components.Partition(g)
	assert.NoError(t, err)
	assert.Len(t, comps, 1)
	assert.Equal(t, []string{"A", "B", "C"}, comps[0])
}

func TestPartition_MultipleComponentsOrderedBySmallestMember(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"X", "Y", "A", "B"} {
		assert.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("X", "Y", 0)
	assert.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	assert.NoError(t, err)

	comps, err := components.Partition(g)
	assert.NoError(t, err)
	assert.Len(t, comps, 2)
	assert.Equal(t, []string{"A", "B"}, comps[0])
	assert.Equal(t, []string{"X", "Y"}, comps[1])
}

func TestPartition_IsolatedVertexIsItsOwnComponent(t *testing.T) {
	g := core.NewGraph()
	assert.NoError(t, g.AddVertex("Solo"))
	comps, err := components.Partition(g)
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"Solo"}}, comps)
}
