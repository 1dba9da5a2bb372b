package decompose

import "github.com/katalvlaran/treewidth/cliquegraph"

// Strategy names one of the seven spanning-tree-construction-and-fill
// policies. The set is closed: dispatch is a single switch in Run.
type Strategy int

const (
	// MSTAndFill grows a literal minimum spanning tree of CG by edge
	// weight, then fills every bag via the path-fill pass.
	MSTAndFill Strategy = iota
	// MSTAndUseTreeStructure grows the same MST, then fills via a rooted
	// lowest-common-ancestor walk instead of the path-fill pass.
	MSTAndUseTreeStructure
	// FillWhilstMST grows T by scoring candidates against the current
	// T-bag of their frontier parent, filling immediately after each add.
	FillWhilstMST
	// FillWhilstMSTAndLogBagSize runs the same growth and fill as
	// FillWhilstMST; both report the running maximum bag size to an
	// observer callback registered with WithBagSizeObserver.
	FillWhilstMSTAndLogBagSize
	// FillWhilstMSTEdgeUpdate behaves as FillWhilstMST, additionally
	// rescanning fill-touched T-nodes for newly eligible frontier entries.
	FillWhilstMSTEdgeUpdate
	// FillWhilstMSTTree behaves as FillWhilstMST, but fills via a
	// maintained predecessor/depth map instead of a fresh path search.
	FillWhilstMSTTree
	// FillWhilstMSTBagSize selects candidates by simulated resulting max
	// bag size rather than by the weight function, ignoring weightFn.
	FillWhilstMSTBagSize
)

// String names the strategy.
func (s Strategy) String() string {
	switch s {
	case MSTAndFill:
		return "MSTAndFill"
	case MSTAndUseTreeStructure:
		return "MSTAndUseTreeStructure"
	case FillWhilstMST:
		return "FillWhilstMST"
	case FillWhilstMSTAndLogBagSize:
		return "FillWhilstMSTAndLogBagSize"
	case FillWhilstMSTEdgeUpdate:
		return "FillWhilstMSTEdgeUpdate"
	case FillWhilstMSTTree:
		return "FillWhilstMSTTree"
	case FillWhilstMSTBagSize:
		return "FillWhilstMSTBagSize"
	default:
		return "Strategy(unknown)"
	}
}

// Run grows a spanning tree of cg and fills its bags according to
// strategy, returning the resulting tree decomposition T. idx is the
// inverted index built alongside cg (cliquegraph.BuildWithIndex); wf is
// consulted by every strategy except FillWhilstMSTBagSize.
//
// An empty cg (no nodes) yields an empty T.
func Run(cg *cliquegraph.Graph, idx cliquegraph.Index, strategy Strategy, wf cliquegraph.WeightFunc, opts ...Option) *cliquegraph.Graph {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if cg.NodeCount() == 0 {
		return cliquegraph.New()
	}

	switch strategy {
	case MSTAndFill:
		return runMSTAndFill(cg, wf)
	case MSTAndUseTreeStructure:
		return runMSTAndUseTreeStructure(cg, wf)
	case FillWhilstMST:
		return runFillWhilstMST(cg, idx, wf, &o)
	case FillWhilstMSTAndLogBagSize:
		return runFillWhilstMST(cg, idx, wf, &o)
	case FillWhilstMSTEdgeUpdate:
		return runFillWhilstMSTEdgeUpdate(cg, idx, wf)
	case FillWhilstMSTTree:
		return runFillWhilstMSTTree(cg, idx, wf)
	case FillWhilstMSTBagSize:
		return runFillWhilstMSTBagSize(cg, idx)
	default:
		panic(ErrUnreachable)
	}
}
