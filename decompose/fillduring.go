package decompose

import "github.com/katalvlaran/treewidth/cliquegraph"

// fillDuringGrowth implements the fill-during-growth step shared by
// FillWhilstMST and its variants: when cgID joins T (as T-node newTID, with
// parent T-node parentTID), for every vertex u in bag(c) \ bag(parent),
// M[u] names the other CG nodes whose original bag contains u; for each
// such node already present in T, u is propagated along the tree path
// between newTID and that node (exclusive of both ends).
//
// It returns, per touched T-node id, the set of vertices newly inserted
// there — the edge-update variant uses this to discover CG nodes that
// became frontier-eligible only because a bag grew.
func fillDuringGrowth(t *cliquegraph.Graph, idx cliquegraph.Index, nodeMap map[int]int, newTID, parentTID int) map[int]map[int]struct{} {
	newBag := t.Bag(newTID)
	parentBag := t.Bag(parentTID)
	diff := newBag.Difference(parentBag)

	touched := map[int]map[int]struct{}{}
	for _, u := range diff.Sorted() {
		for _, otherCGID := range idx.NodesFor(u) {
			otherTID, placed := nodeMap[otherCGID]
			if !placed || otherTID == newTID {
				continue
			}
			path := uniquePath(t, newTID, otherTID)
			if path == nil {
				panic(ErrUnreachable)
			}
			fillInternal(t, path, cliquegraph.NewBag(u))
			if len(path) <= 2 {
				continue
			}
			for _, n := range path[1 : len(path)-1] {
				set, ok := touched[n]
				if !ok {
					set = make(map[int]struct{})
					touched[n] = set
				}
				set[u] = struct{}{}
			}
		}
	}

	return touched
}
