package decompose

import "github.com/katalvlaran/treewidth/cliquegraph"

// Width returns the width of a tree decomposition: the largest bag
// cardinality minus one, or 0 for an empty decomposition.
func Width(t *cliquegraph.Graph) int {
	max := t.MaxBagSize()
	if max == 0 {
		return 0
	}
	return max - 1
}
