package lowerbound_test

import (
	"testing"

	"github.com/katalvlaran/treewidth/cliquegraph"
	"github.com/katalvlaran/treewidth/core"
	"github.com/katalvlaran/treewidth/lowerbound"
	"github.com/stretchr/testify/assert"
)

func buildGraph(t *testing.T, n int, edges [][2]int) cliquegraph.InputGraph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		assert.NoError(t, g.AddVertex(idOf(i)))
	}
	for _, e := range edges {
		_, err := g.AddEdge(idOf(e[0]), idOf(e[1]), 0)
		assert.NoError(t, err)
	}
	input, _, _, err := cliquegraph.FromCoreGraph(g)
	assert.NoError(t, err)
	return input
}

func idOf(i int) string { return string(rune('A' + i)) }

func TestMMDPlus_SingleEdge(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	assert.Equal(t, 1, lowerbound.MaximumMinimumDegreePlus(g))
}

func TestMMDPlus_Path(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}})
	assert.Equal(t, 1, lowerbound.MaximumMinimumDegreePlus(g))
}

func TestMMDPlus_Triangle(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	assert.Equal(t, 2, lowerbound.MaximumMinimumDegreePlus(g))
}

func TestMMDPlus_K4(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g := buildGraph(t, 4, edges)
	assert.Equal(t, 3, lowerbound.MaximumMinimumDegreePlus(g))
}

func TestMMDPlus_SingleVertex(t *testing.T) {
	g := buildGraph(t, 1, nil)
	assert.Equal(t, 0, lowerbound.MaximumMinimumDegreePlus(g))
}

func TestMMDPlus_IsolatedVertexAmongOthersTerminates(t *testing.T) {
	// Vertex 0 is isolated; 1-2-3 form a triangle. Without dropping
	// zero-degree vertices outright, the isolated vertex would be
	// re-selected as the minimum-degree vertex forever.
	edges := [][2]int{{1, 2}, {2, 3}, {1, 3}}
	g := buildGraph(t, 4, edges)
	assert.Equal(t, 2, lowerbound.MaximumMinimumDegreePlus(g))
}
