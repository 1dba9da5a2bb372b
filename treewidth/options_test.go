package treewidth_test

import (
	"testing"

	"github.com/katalvlaran/treewidth/core"
	"github.com/katalvlaran/treewidth/decompose"
	"github.com/katalvlaran/treewidth/treewidth"
	"github.com/stretchr/testify/assert"
)

// TestWithCliqueBound_SplitsCliquesAndStillProducesAValidDecomposition
// forces K4 through clique.Bounded(2), so every enumerated clique is a
// plain edge rather than the full 4-clique; the resulting decomposition
// must still satisfy all three axioms, and its width can be no less than
// the graph's true treewidth of 3.
func TestWithCliqueBound_SplitsCliquesAndStillProducesAValidDecomposition(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"0", "1", "2", "3"} {
		assert.NoError(t, g.AddVertex(v))
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_, err := g.AddEdge(label(i), label(j), 0)
			assert.NoError(t, err)
		}
	}

	width, err := treewidth.ComputeUpperBound(g,
		treewidth.WithCliqueBound(2),
		treewidth.WithValidate(true))
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, width, 3)
}

// TestWithCliqueBound_ZeroUsesMaximalCliques confirms the default (no
// bound) recovers the exact treewidth of K4, which is 3.
func TestWithCliqueBound_ZeroUsesMaximalCliques(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"0", "1", "2", "3"} {
		assert.NoError(t, g.AddVertex(v))
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_, err := g.AddEdge(label(i), label(j), 0)
			assert.NoError(t, err)
		}
	}

	width, err := treewidth.ComputeUpperBound(g, treewidth.WithValidate(true))
	assert.NoError(t, err)
	assert.Equal(t, 3, width)
}

// TestWithBagSizeObserver_ReceivesGrowingMaxBagSize confirms the observer
// set via the public facade actually reaches decompose.Run: for K4 under
// FillWhilstMST it must see a non-decreasing sequence of bag sizes ending
// at the graph's true treewidth plus one.
func TestWithBagSizeObserver_ReceivesGrowingMaxBagSize(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"0", "1", "2", "3"} {
		assert.NoError(t, g.AddVertex(v))
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			_, err := g.AddEdge(label(i), label(j), 0)
			assert.NoError(t, err)
		}
	}

	var observed []int
	width, err := treewidth.ComputeUpperBound(g,
		treewidth.WithStrategy(decompose.FillWhilstMST),
		treewidth.WithBagSizeObserver(func(maxBagSize int) {
			observed = append(observed, maxBagSize)
		}))
	assert.NoError(t, err)
	assert.NotEmpty(t, observed)
	assert.Equal(t, width+1, observed[len(observed)-1])
	for i := 1; i < len(observed); i++ {
		assert.GreaterOrEqual(t, observed[i], observed[i-1])
	}
}
