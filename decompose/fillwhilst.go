package decompose

import "github.com/katalvlaran/treewidth/cliquegraph"

// runFillWhilstMST grows T by scoring each frontier option against the
// parent's *current* T-bag (which may already have grown via fill) and the
// candidate's original CG bag, filling immediately after every placement.
// The bag-size observer, if registered via WithBagSizeObserver, is invoked
// after every step; FillWhilstMSTAndLogBagSize is this same function with a
// non-default observer.
func runFillWhilstMST(cg *cliquegraph.Graph, idx cliquegraph.Index, wf cliquegraph.WeightFunc, o *runOptions) *cliquegraph.Graph {
	t := cliquegraph.New()
	nodeMap := make(map[int]int)

	ids := cg.NodeIDs()
	start := ids[0]
	rootTID := t.AddNode(cg.Bag(start).Clone())
	nodeMap[start] = rootTID

	f := make(frontier)
	addCandidates(f, cg, nodeMap, rootTID, start)
	o.bagSizeObserver(t.MaxBagSize())

	for len(nodeMap) < len(ids) {
		tTID, cID, ok := selectMin(f, func(tTID, cID int) cliquegraph.Weight {
			return wf(t.Bag(tTID), cg.Bag(cID))
		})
		if !ok {
			panic(ErrUnreachable)
		}

		newTID := t.AddNode(cg.Bag(cID).Clone())
		t.AddEdge(tTID, newTID, unitWeight{})
		nodeMap[cID] = newTID

		fillDuringGrowth(t, idx, nodeMap, newTID, tTID)

		dropCandidate(f, cID)
		addCandidates(f, cg, nodeMap, newTID, cID)
		o.bagSizeObserver(t.MaxBagSize())
	}

	return t
}

// runFillWhilstMSTEdgeUpdate behaves as runFillWhilstMST, additionally
// adding frontier entries for any not-yet-placed CG node whose bag now
// intersects a T-node that just grew via fill — a candidate that plain
// growth (restricted to direct CG neighbours of the placed node) would
// miss until, or unless, it happened to be a CG neighbour too.
func runFillWhilstMSTEdgeUpdate(cg *cliquegraph.Graph, idx cliquegraph.Index, wf cliquegraph.WeightFunc) *cliquegraph.Graph {
	t := cliquegraph.New()
	nodeMap := make(map[int]int)

	ids := cg.NodeIDs()
	start := ids[0]
	rootTID := t.AddNode(cg.Bag(start).Clone())
	nodeMap[start] = rootTID

	f := make(frontier)
	addCandidates(f, cg, nodeMap, rootTID, start)

	for len(nodeMap) < len(ids) {
		tTID, cID, ok := selectMin(f, func(tTID, cID int) cliquegraph.Weight {
			return wf(t.Bag(tTID), cg.Bag(cID))
		})
		if !ok {
			panic(ErrUnreachable)
		}

		newTID := t.AddNode(cg.Bag(cID).Clone())
		t.AddEdge(tTID, newTID, unitWeight{})
		nodeMap[cID] = newTID

		touched := fillDuringGrowth(t, idx, nodeMap, newTID, tTID)
		for touchedTID, vertices := range touched {
			for v := range vertices {
				for _, cand := range idx.NodesFor(v) {
					if _, placed := nodeMap[cand]; !placed {
						f[frontierKey{tTID: touchedTID, cCGID: cand}] = struct{}{}
					}
				}
			}
		}

		dropCandidate(f, cID)
		addCandidates(f, cg, nodeMap, newTID, cID)
	}

	return t
}

// runFillWhilstMSTTree behaves as runFillWhilstMST, but fills via a
// maintained predecessor/depth map instead of a fresh tree-path search, and
// propagates every vertex of the newly placed bag (not just the difference
// against its parent).
func runFillWhilstMSTTree(cg *cliquegraph.Graph, idx cliquegraph.Index, wf cliquegraph.WeightFunc) *cliquegraph.Graph {
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
			return wf(t.Bag(tTID), cg.Bag(cID))
		})
		if !ok {
			panic(ErrUnreachable)
		}

		newTID := t.AddNode(cg.Bag(cID).Clone())
		t.AddEdge(tTID, newTID, unitWeight{})
		nodeMap[cID] = newTID
		pred[newTID] = TreeLink{Parent: tTID, Depth: pred[tTID].Depth + 1}

		for _, u := range t.Bag(newTID).Sorted() {
			for _, otherCGID := range idx.NodesFor(u) {
				otherTID, placed := nodeMap[otherCGID]
				if !placed || otherTID == newTID {
					continue
				}
				fillUntilCommonPredecessor(t, pred, newTID, otherTID, u)
			}
		}

		dropCandidate(f, cID)
		addCandidates(f, cg, nodeMap, newTID, cID)
	}

	return t
}

// runFillWhilstMSTBagSize selects, at every step, the frontier option that
// would minimise the resulting tree's maximum bag size, evaluated by
// cloning the in-progress tree and simulating the commit (the weight
// function is not consulted at all). Like FillWhilstMSTTree, both the
// simulation and the committed fill propagate a vertex along the tree path
// found via a maintained predecessor/depth map (fillUntilCommonPredecessor)
// rather than a fresh path search per vertex.
func runFillWhilstMSTBagSize(cg *cliquegraph.Graph, idx cliquegraph.Index) *cliquegraph.Graph {
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
			return simulateBagSize(t, cg, idx, pred, nodeMap, tTID, cID)
		})
		if !ok {
			panic(ErrUnreachable)
		}

		newTID := t.AddNode(cg.Bag(cID).Clone())
		t.AddEdge(tTID, newTID, unitWeight{})
		nodeMap[cID] = newTID
		pred[newTID] = TreeLink{Parent: tTID, Depth: pred[tTID].Depth + 1}

		for _, u := range t.Bag(newTID).Sorted() {
			for _, otherCGID := range idx.NodesFor(u) {
				otherTID, placed := nodeMap[otherCGID]
				if !placed || otherTID == newTID {
					continue
				}
				fillUntilCommonPredecessor(t, pred, newTID, otherTID, u)
			}
		}

		dropCandidate(f, cID)
		addCandidates(f, cg, nodeMap, newTID, cID)
	}

	return t
}

// simulateBagSize scores (tTID, cID) by the resulting maximum bag size if
// cID were committed and filled now, computed against a throwaway clone of
// both the tree and its predecessor map so the real tree is left untouched.
func simulateBagSize(t, cg *cliquegraph.Graph, idx cliquegraph.Index, pred PredMap, nodeMap map[int]int, tTID, cID int) cliquegraph.Weight {
	clone := t.Clone()
	clonePred := make(PredMap, len(pred)+1)
	for k, v := range pred {
		clonePred[k] = v
	}
	cloneMap := make(map[int]int, len(nodeMap)+1)
	for k, v := range nodeMap {
		cloneMap[k] = v
	}

	newTID := clone.AddNode(cg.Bag(cID).Clone())
	clone.AddEdge(tTID, newTID, unitWeight{})
	cloneMap[cID] = newTID
	clonePred[newTID] = TreeLink{Parent: tTID, Depth: clonePred[tTID].Depth + 1}

	for _, u := range clone.Bag(newTID).Sorted() {
		for _, otherCGID := range idx.NodesFor(u) {
			otherTID, placed := cloneMap[otherCGID]
			if !placed || otherTID == newTID {
				continue
			}
			fillUntilCommonPredecessor(clone, clonePred, newTID, otherTID, u)
		}
	}

	return intWeight(clone.MaxBagSize())
}

// intWeight is a minimal Weight wrapper for plain integer scores (used by
// the bag-size strategy, which does not go through package weight).
type intWeight int

func (v intWeight) Less(other cliquegraph.Weight) bool {
	return v < other.(intWeight)
}
