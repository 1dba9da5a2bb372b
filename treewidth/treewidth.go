package treewidth

import (
	"github.com/katalvlaran/treewidth/clique"
	"github.com/katalvlaran/treewidth/cliquegraph"
	"github.com/katalvlaran/treewidth/components"
	"github.com/katalvlaran/treewidth/core"
	"github.com/katalvlaran/treewidth/decompose"
)

// ComputeUpperBound computes an upper-bound treewidth of g, assumed
// connected. Use ComputeUpperBoundNotConnected for graphs that may not be.
func ComputeUpperBound(g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrEmptyGraph
	}

	input, _, _, err := cliquegraph.FromCoreGraph(g)
	if err != nil {
		return 0, err
	}
	if input.VertexCount() == 0 {
		return 0, nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return widthOf(input, cfg)
}

// ComputeUpperBoundNotConnected computes an upper-bound treewidth of g,
// processing each connected component independently and returning the
// maximum width across them.
func ComputeUpperBoundNotConnected(g *core.Graph, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrEmptyGraph
	}

	input, _, toID, err := cliquegraph.FromCoreGraph(g)
	if err != nil {
		return 0, err
	}
	if input.VertexCount() == 0 {
		return 0, nil
	}

	comps, err := components.Partition(g)
	if err != nil {
		return 0, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	max := 0
	for _, comp := range comps {
		ids := make([]int, len(comp))
		for i, label := range comp {
			ids[i] = toID[label]
		}
		sub, _ := cliquegraph.Induced(input, ids)

		width, err := widthOf(sub, cfg)
		if err != nil {
			return 0, err
		}
		if width > max {
			max = width
		}
	}

	return max, nil
}

// widthOf runs the full pipeline — clique enumeration, clique-graph
// construction, spanning-tree growth and fill, optional validation, width
// measurement — against one (assumed connected) input graph.
func widthOf(g cliquegraph.InputGraph, cfg config) (int, error) {
	var cliques []cliquegraph.Bag
	if cfg.cliqueBound != 0 {
		cliques = clique.Bounded(g, cfg.cliqueBound)
	} else {
		cliques = clique.Maximal(g)
	}

	cg, idx := cliquegraph.BuildWithIndex(cliques, cfg.weightFn)
	t := decompose.Run(cg, idx, cfg.strategy, cfg.weightFn, cfg.decomposeOpts...)

	if cfg.validate {
		if axErr, err := decompose.Check(g, t, nil, idx); err != nil {
			return 0, axErr
		}
	}

	return decompose.Width(t), nil
}
