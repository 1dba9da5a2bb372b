package decompose

import "github.com/katalvlaran/treewidth/cliquegraph"

// TreeLink records one node's parent and depth in a rooted view of a tree
// decomposition.
type TreeLink struct {
	Parent int // T-node id, or -1 for the root
	Depth  int
}

// PredMap is the rooted-tree predecessor/depth map over a tree
// decomposition's T-node ids.
type PredMap map[int]TreeLink

// unitWeight is the placeholder edge weight used for tree edges in T: the
// validator and width measurement only ever read a node's Bag, never a
// tree edge's weight, so any total-ordered value would do.
type unitWeight struct{}

func (unitWeight) Less(cliquegraph.Weight) bool { return false }

// frontierKey identifies one (already-in-tree, candidate) growth option.
// tTID is the T-node id already placed; cCGID is the clique-graph id of the
// not-yet-placed candidate.
type frontierKey struct {
	tTID, cCGID int
}

// frontier tracks growth candidates and supports the engine's linear
// argmin-with-deterministic-tie-break selection.
type frontier map[frontierKey]struct{}

// addCandidates pushes every CG-neighbour of cgID not yet placed (absent
// from nodeMap) as a new frontier option rooted at tTID.
func addCandidates(f frontier, cg *cliquegraph.Graph, nodeMap map[int]int, tTID, cgID int) {
	for _, nbr := range cg.Neighbors(cgID) {
		if _, placed := nodeMap[nbr]; !placed {
			f[frontierKey{tTID: tTID, cCGID: nbr}] = struct{}{}
		}
	}
}

// dropCandidate removes every frontier option targeting cgID, since it is
// about to be placed (or already was).
func dropCandidate(f frontier, cgID int) {
	for k := range f {
		if k.cCGID == cgID {
			delete(f, k)
		}
	}
}

// selectMin scans the frontier linearly and returns the option minimising
// score, breaking ties by ascending candidate id then ascending tree id so
// that repeated runs over the same input are reproducible.
func selectMin(f frontier, score func(tTID, cCGID int) cliquegraph.Weight) (tTID, cCGID int, ok bool) {
	bestTID, bestCID := -1, -1
	var bestScore cliquegraph.Weight
	for k := range f {
		s := score(k.tTID, k.cCGID)
		switch {
		case bestCID == -1:
			bestTID, bestCID, bestScore = k.tTID, k.cCGID, s
		case s.Less(bestScore):
			bestTID, bestCID, bestScore = k.tTID, k.cCGID, s
		case !bestScore.Less(s):
			// scores tie (neither strictly less than the other): break
			// deterministically by candidate id, then tree id.
			if k.cCGID < bestCID || (k.cCGID == bestCID && k.tTID < bestTID) {
				bestTID, bestCID, bestScore = k.tTID, k.cCGID, s
			}
		}
	}
	if bestCID == -1 {
		return 0, 0, false
	}
	return bestTID, bestCID, true
}
