package weight_test

import (
	"testing"

	"github.com/katalvlaran/treewidth/cliquegraph"
	"github.com/katalvlaran/treewidth/weight"
	"github.com/stretchr/testify/assert"
)

func TestScalarFunctions(t *testing.T) {
	a := cliquegraph.NewBag(1, 2, 3)
	b := cliquegraph.NewBag(2, 3, 4)

	assert.Equal(t, weight.IntValue(0), weight.Neutral(a, b))
	assert.Equal(t, weight.IntValue(-2), weight.NegativeIntersection(a, b))
	assert.Equal(t, weight.IntValue(2), weight.PositiveIntersection(a, b))
	assert.Equal(t, weight.IntValue(6), weight.DisjointUnion(a, b))
	assert.Equal(t, weight.IntValue(4), weight.Union(a, b))
	assert.Equal(t, weight.IntValue(2), weight.LeastDifference(a, b))
}

func TestPairFunctionsOrderLexicographically(t *testing.T) {
	a := cliquegraph.NewBag(1, 2, 3)
	b := cliquegraph.NewBag(2, 3, 4)

	ni := weight.NegativeIntersectionThenLeastDifference(a, b).(weight.PairValue)
	assert.Equal(t, -2, ni.First)
	assert.Equal(t, 2, ni.Second)

	lo := weight.PairValue{First: -2, Second: 1}
	hi := weight.PairValue{First: -2, Second: 2}
	assert.True(t, lo.Less(hi))
	assert.False(t, hi.Less(lo))

	loFirst := weight.PairValue{First: -3, Second: 99}
	assert.True(t, loFirst.Less(hi))
}

func TestNamed(t *testing.T) {
	fn, ok := weight.Named("negative_intersection")
	assert.True(t, ok)
	assert.NotNil(t, fn)

	_, ok = weight.Named("not_a_real_name")
	assert.False(t, ok)
}
