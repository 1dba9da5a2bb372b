package ktree_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/treewidth/cliquegraph"
	"github.com/katalvlaran/treewidth/ktree"
	"github.com/katalvlaran/treewidth/lowerbound"
	"github.com/stretchr/testify/assert"
)

func TestGenerateKTree_ErrorsWhenKExceedsN(t *testing.T) {
	_, err := ktree.GenerateKTree(5, 3, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, ktree.ErrKTooLarge)
}

func TestGenerateKTree_EdgeCountMatchesFormula(t *testing.T) {
	k, n := 3, 10
	g, err := ktree.GenerateKTree(k, n, rand.New(rand.NewSource(7)))
	assert.NoError(t, err)
	want := k*(k-1)/2 + k*(n-k)
	assert.Len(t, g.Edges(), want)
}

func TestGenerateKTree_ZeroKIsEdgeless(t *testing.T) {
	g, err := ktree.GenerateKTree(0, 6, rand.New(rand.NewSource(3)))
	assert.NoError(t, err)
	assert.Empty(t, g.Edges())
	assert.Equal(t, 6, g.VertexCount())
}

func TestGenerateKTree_MMDPlusEqualsK(t *testing.T) {
	k, n := 4, 20
	g, err := ktree.GenerateKTree(k, n, rand.New(rand.NewSource(11)))
	assert.NoError(t, err)

	input, _, _, err := cliquegraph.FromCoreGraph(g)
	assert.NoError(t, err)
	assert.Equal(t, k, lowerbound.MaximumMinimumDegreePlus(input))
}

func TestGeneratePartialKTree_RemovesFloorOfPPercentOfEdges(t *testing.T) {
	k, n, p := 3, 15, 50
	full, err := ktree.GenerateKTree(k, n, rand.New(rand.NewSource(5)))
	assert.NoError(t, err)
	fullEdgeCount := len(full.Edges())

	partial, err := ktree.GeneratePartialKTree(k, n, p, rand.New(rand.NewSource(5)))
	assert.NoError(t, err)

	want := fullEdgeCount - (fullEdgeCount*p)/100
	assert.Len(t, partial.Edges(), want)
}

func TestGenerateGuaranteedTreewidth_FindsMatchingSample(t *testing.T) {
	g, err := ktree.GenerateGuaranteedTreewidth(3, 12, 0, rand.New(rand.NewSource(9)), 5, nil)
	assert.NoError(t, err)
	assert.NotNil(t, g)

	input, _, _, err := cliquegraph.FromCoreGraph(g)
	assert.NoError(t, err)
	assert.Equal(t, 3, lowerbound.MaximumMinimumDegreePlus(input))
}
