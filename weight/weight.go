// Package weight provides the pluggable edge-weight functions used to score
// candidate edges of the clique graph. A weight function is a pure mapping
// from two bags to a totally ordered value; the engine in package decompose
// never inspects a value's structure, only compares it via Less.
package weight

import "github.com/katalvlaran/treewidth/cliquegraph"

// Value is a totally ordered weight. cliquegraph.Graph edges carry a Value.
type Value = cliquegraph.Weight

// Func scores a candidate clique-graph edge between bags a and b.
type Func = cliquegraph.WeightFunc

// IntValue is a scalar weight, used by every non-lexicographic function.
type IntValue int

// Less implements Value.
func (v IntValue) Less(other Value) bool {
	return v < other.(IntValue)
}

// PairValue is a lexicographically ordered two-component weight, used by
// NegativeIntersectionThenLeastDifference and its mirror.
type PairValue struct {
	First, Second int
}

// Less implements Value, comparing First then Second.
func (v PairValue) Less(other Value) bool {
	o := other.(PairValue)
	if v.First != o.First {
		return v.First < o.First
	}
	return v.Second < o.Second
}

// Neutral always scores 0; it disables weight-driven selection, leaving tie
// breaking (deterministic CG-vertex id) as the only discriminator.
func Neutral(a, b cliquegraph.Bag) Value {
	return IntValue(0)
}

// NegativeIntersection scores -|A ∩ B|; minimising it favours large overlap.
func NegativeIntersection(a, b cliquegraph.Bag) Value {
	return IntValue(-a.Intersection(b).Len())
}

// PositiveIntersection scores +|A ∩ B|; minimising it favours small overlap.
func PositiveIntersection(a, b cliquegraph.Bag) Value {
	return IntValue(a.Intersection(b).Len())
}

// DisjointUnion scores |A| + |B|, ignoring any overlap.
func DisjointUnion(a, b cliquegraph.Bag) Value {
	return IntValue(a.Len() + b.Len())
}

// Union scores |A ∪ B|.
func Union(a, b cliquegraph.Bag) Value {
	return IntValue(a.Union(b).Len())
}

// LeastDifference scores |A △ B|, the symmetric-difference size.
func LeastDifference(a, b cliquegraph.Bag) Value {
	return IntValue(a.SymmetricDifference(b).Len())
}

// NegativeIntersectionThenLeastDifference scores (-|A∩B|, |A△B|).
func NegativeIntersectionThenLeastDifference(a, b cliquegraph.Bag) Value {
	return PairValue{
		First:  -a.Intersection(b).Len(),
		Second: a.SymmetricDifference(b).Len(),
	}
}

// LeastDifferenceThenNegativeIntersection scores (|A△B|, -|A∩B|).
func LeastDifferenceThenNegativeIntersection(a, b cliquegraph.Bag) Value {
	return PairValue{
		First:  a.SymmetricDifference(b).Len(),
		Second: -a.Intersection(b).Len(),
	}
}

// Named returns the weight function registered under name, and whether one
// was found: neutral, negative_intersection, positive_intersection,
// disjoint_union, union, least_difference, ni_then_ld, ld_then_ni.
func Named(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

var registry = map[string]Func{
	"neutral":                Neutral,
	"negative_intersection":  NegativeIntersection,
	"positive_intersection":  PositiveIntersection,
	"disjoint_union":         DisjointUnion,
	"union":                  Union,
	"least_difference":       LeastDifference,
	"ni_then_ld":             NegativeIntersectionThenLeastDifference,
	"ld_then_ni":             LeastDifferenceThenNegativeIntersection,
}
