package decompose

import "github.com/katalvlaran/treewidth/cliquegraph"

// fillUntilCommonPredecessor inserts vertex into every T-bag strictly
// between a and b on the tree path, found by repeatedly lifting the deeper
// of the two nodes (via pred) until they coincide at their lowest common
// ancestor. Used in place of a fresh path search whenever a predecessor/depth
// map is already being maintained.
func fillUntilCommonPredecessor(t *cliquegraph.Graph, pred PredMap, a, b, vertex int) {
	if a == b {
		return
	}

	na, nb := a, b
	var internal []int
	for na != nb {
		da, db := pred[na].Depth, pred[nb].Depth
		switch {
		case da > db:
			internal = append(internal, na)
			na = pred[na].Parent
		case db > da:
			internal = append(internal, nb)
			nb = pred[nb].Parent
		default:
			internal = append(internal, na, nb)
			na = pred[na].Parent
			nb = pred[nb].Parent
		}
	}
	// na == nb is the lowest common ancestor; it lies strictly between a
	// and b unless it coincides with one of them.
	internal = append(internal, na)

	for _, n := range internal {
		if n == a || n == b {
			continue
		}
		t.InsertIntoBag(n, vertex)
	}
}
