package decompose

import (
	"testing"

	"github.com/katalvlaran/treewidth/cliquegraph"
	"github.com/stretchr/testify/assert"
)

// linearPred builds a rooted chain of four nodes, returning the tree, its
// node ids, and a PredMap consistent with that shape:
//
//	0 (depth 0)
//	└─1 (depth 1)
//	  └─2 (depth 2)
//	    └─3 (depth 3)
func linearPred(t *testing.T) (*cliquegraph.Graph, []int, PredMap) {
	t.Helper()
	tree := cliquegraph.New()
	ids := make([]int, 4)
	for i := range ids {
		ids[i] = tree.AddNode(cliquegraph.NewBag(i))
	}
	pred := make(PredMap)
	pred[ids[0]] = TreeLink{Parent: -1, Depth: 0}
	for i := 1; i < len(ids); i++ {
		tree.AddEdge(ids[i-1], ids[i], intWeight(0))
		pred[ids[i]] = TreeLink{Parent: ids[i-1], Depth: i}
	}
	return tree, ids, pred
}

func TestFillUntilCommonPredecessor_FillsStrictlyBetween(t *testing.T) {
	tree, ids, pred := linearPred(t)

	fillUntilCommonPredecessor(tree, pred, ids[0], ids[3], 77)

	assert.False(t, tree.Bag(ids[0]).Has(77))
	assert.True(t, tree.Bag(ids[1]).Has(77))
	assert.True(t, tree.Bag(ids[2]).Has(77))
	assert.False(t, tree.Bag(ids[3]).Has(77))
}

func TestFillUntilCommonPredecessor_SameNodeIsNoOp(t *testing.T) {
	tree, ids, pred := linearPred(t)
	fillUntilCommonPredecessor(tree, pred, ids[1], ids[1], 77)
	assert.False(t, tree.Bag(ids[1]).Has(77))
}

func TestFillUntilCommonPredecessor_SiblingsMeetAtAncestor(t *testing.T) {
	// A branching tree: 0 is the root, 1 and 2 are both children of 0 at
	// equal depth, so the LCA of 1 and 2 is 0 itself; it is the only node
	// strictly between them and is the one that receives the vertex.
	tree := cliquegraph.New()
	r := tree.AddNode(cliquegraph.NewBag(0))
	c1 := tree.AddNode(cliquegraph.NewBag(1))
	c2 := tree.AddNode(cliquegraph.NewBag(2))
	tree.AddEdge(r, c1, intWeight(0))
	tree.AddEdge(r, c2, intWeight(0))

	pred := PredMap{
		r:  {Parent: -1, Depth: 0},
		c1: {Parent: r, Depth: 1},
		c2: {Parent: r, Depth: 1},
	}

	fillUntilCommonPredecessor(tree, pred, c1, c2, 77)

	assert.True(t, tree.Bag(r).Has(77))
	assert.False(t, tree.Bag(c1).Has(77))
	assert.False(t, tree.Bag(c2).Has(77))
}
