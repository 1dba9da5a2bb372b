package treewidth

import (
	"github.com/katalvlaran/treewidth/cliquegraph"
	"github.com/katalvlaran/treewidth/decompose"
	"github.com/katalvlaran/treewidth/weight"
)

// Option configures a single ComputeUpperBound / ComputeUpperBoundNotConnected call.
type Option func(*config)

type config struct {
	strategy      decompose.Strategy
	weightFn      cliquegraph.WeightFunc
	validate      bool
	cliqueBound   int // 0 means unbounded (use maximal cliques directly)
	decomposeOpts []decompose.Option
}

func defaultConfig() config {
	return config{
		strategy:    decompose.MSTAndFill,
		weightFn:    weight.NegativeIntersection,
		validate:    false,
		cliqueBound: 0,
	}
}

// WithStrategy selects the spanning-tree-construction-and-fill strategy.
// Defaults to MSTAndFill.
func WithStrategy(s decompose.Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithWeightFunc selects the clique-graph edge-weight function. Ignored by
// FillWhilstMSTBagSize. Defaults to weight.NegativeIntersection().
func WithWeightFunc(wf cliquegraph.WeightFunc) Option {
	return func(c *config) { c.weightFn = wf }
}

// WithValidate runs decompose.Check against the produced decomposition and
// returns its error (wrapping decompose.ErrAxiomViolation) instead of a nil
// error on success. Defaults to off, since validation roughly doubles the
// work of a call whose strategies are already proven correct by their own
// construction.
func WithValidate(enabled bool) Option {
	return func(c *config) { c.validate = enabled }
}

// WithCliqueBound restricts clique enumeration to cliques of size at most
// bound (or, if negative, ω(G)+bound) via clique.Bounded instead of
// clique.Maximal. Zero (the default) means unbounded.
func WithCliqueBound(bound int) Option {
	return func(c *config) { c.cliqueBound = bound }
}

// WithBagSizeObserver forwards fn to decompose.WithBagSizeObserver, invoked
// after every spanning-tree growth step with the tree's running maximum bag
// size. Only FillWhilstMST and FillWhilstMSTAndLogBagSize call it; other
// strategies accept and ignore it silently, matching decompose.Run itself.
func WithBagSizeObserver(fn func(maxBagSize int)) Option {
	return func(c *config) { c.decomposeOpts = append(c.decomposeOpts, decompose.WithBagSizeObserver(fn)) }
}
