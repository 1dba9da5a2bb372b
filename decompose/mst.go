package decompose

import (
	"sort"

	"github.com/katalvlaran/treewidth/cliquegraph"
)

// buildMST grows a literal minimum spanning tree of cg, scoring each
// frontier option by the weight of the corresponding CG edge — the
// selection score shared by MSTAndFill and MSTAndUseTreeStructure. It
// returns the tree, the CG-id -> T-id placement map, and the rooted
// predecessor/depth map recorded as nodes are placed.
func buildMST(cg *cliquegraph.Graph, wf cliquegraph.WeightFunc) (*cliquegraph.Graph, map[int]int, PredMap) {
	t := cliquegraph.New()
	nodeMap := make(map[int]int)
	pred := make(PredMap)

	ids := cg.NodeIDs()
	start := ids[0]
	rootTID := t.AddNode(cg.Bag(start).Clone())
	nodeMap[start] = rootTID
	pred[rootTID] = TreeLink{Parent: -1, Depth: 0}

	f := make(frontier)
	addCandidates(f, cg, nodeMap, rootTID, start)

	for len(nodeMap) < len(ids) {
		tTID, cID, ok := selectMin(f, func(tTID, cID int) cliquegraph.Weight {
			parentCGID := cgIDOf(nodeMap, tTID)
			w, exists := cg.EdgeWeight(parentCGID, cID)
			if !exists {
				panic(ErrUnreachable)
			}
			return w
		})
		if !ok {
			panic(ErrUnreachable) // cg must be connected within one call to Run
		}

		newTID := t.AddNode(cg.Bag(cID).Clone())
		t.AddEdge(tTID, newTID, unitWeight{})
		nodeMap[cID] = newTID
		pred[newTID] = TreeLink{Parent: tTID, Depth: pred[tTID].Depth + 1}

		dropCandidate(f, cID)
		addCandidates(f, cg, nodeMap, newTID, cID)
	}

	return t, nodeMap, pred
}

// cgIDOf inverts nodeMap to find the CG id placed at T-id tTID. nodeMap is
// small (one entry per clique-graph node), so a linear scan is acceptable.
func cgIDOf(nodeMap map[int]int, tTID int) int {
	for cgID, t := range nodeMap {
		if t == tTID {
			return cgID
		}
	}
	panic(ErrUnreachable)
}

func runMSTAndFill(cg *cliquegraph.Graph, wf cliquegraph.WeightFunc) *cliquegraph.Graph {
	t, _, _ := buildMST(cg, wf)
	pathFillAll(t)
	return t
}

func runMSTAndUseTreeStructure(cg *cliquegraph.Graph, wf cliquegraph.WeightFunc) *cliquegraph.Graph {
	t, nodeMap, pred := buildMST(cg, wf)
	fillRootedFromIndex(t, cg, nodeMap, pred)
	return t
}

// fillRootedFromIndex re-derives the inverted index from cg's own bags
// (every bag is, by construction, the original clique it was built from)
// and, for every original vertex appearing in more than one placed node,
// propagates it along the LCA walk from the first node containing it to
// each other such node; the union of those walks is the subtree spanning all
// of them. This realises T3 without relying on a fill-during-growth pass.
func fillRootedFromIndex(t *cliquegraph.Graph, cg *cliquegraph.Graph, nodeMap map[int]int, pred PredMap) {
	occurrences := make(map[int][]int) // original vertex -> T-ids whose *original* bag contained it
	for cgID, tID := range nodeMap {
		for _, v := range cg.Bag(cgID).Sorted() {
			occurrences[v] = append(occurrences[v], tID)
		}
	}

	vertices := make([]int, 0, len(occurrences))
	for v := range occurrences {
		vertices = append(vertices, v)
	}
	sort.Ints(vertices)

	for _, v := range vertices {
		tids := occurrences[v]
		for i := 1; i < len(tids); i++ {
			fillUntilCommonPredecessor(t, pred, tids[0], tids[i], v)
		}
	}
}
