package ktree

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/treewidth/cliquegraph"
	"github.com/katalvlaran/treewidth/core"
	"github.com/katalvlaran/treewidth/lowerbound"
)

// Logger is the minimal injectable sink for the reject-resample loop's
// discarded-attempt notices. The core algorithms themselves never log; a
// nil Logger means "discard".
type Logger interface {
	Printf(format string, args ...any)
}

func vertexID(i int) string { return fmt.Sprintf("v%d", i) }

// GenerateKTree builds a k-tree on n vertices: a base complete graph on k
// vertices, then each of the remaining n-k vertices attached to all members
// of one uniformly sampled "live" k-clique, which is then replaced in the
// pool by k new live cliques (one per removed member). The result has
// exactly k*(k-1)/2 + k*(n-k) edges. Returns ErrKTooLarge if k > n.
func GenerateKTree(k, n int, rng *rand.Rand) (*core.Graph, error) {
	if k > n {
		return nil, ErrKTooLarge
	}
	if rng == nil {
		rng = DeriveRNG(0, 0)
	}

	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(vertexID(i))
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			_, _ = g.AddEdge(vertexID(i), vertexID(j), 0)
		}
	}

	if k == 0 {
		// The live-clique pool would track the empty clique forever; every
		// new vertex simply joins with no edges, which is exactly right for
		// a width-0 (edgeless) k-tree.
		return g, nil
	}

	base := make([]int, k)
	for i := range base {
		base[i] = i
	}
	live := [][]int{base}

	for v := k; v < n; v++ {
		idx := rng.Intn(len(live))
		chosen := live[idx]
		for _, m := range chosen {
			_, _ = g.AddEdge(vertexID(v), vertexID(m), 0)
		}

		live = append(live[:idx:idx], live[idx+1:]...)
		for _, m := range chosen {
			clique := make([]int, 0, k)
			for _, x := range chosen {
				if x != m {
					clique = append(clique, x)
				}
			}
			clique = append(clique, v)
			live = append(live, clique)
		}
	}

	return g, nil
}

// GeneratePartialKTree calls GenerateKTree, then deletes
// floor(edgeCount * p / 100) edges sampled without replacement.
func GeneratePartialKTree(k, n, p int, rng *rand.Rand) (*core.Graph, error) {
	g, err := GenerateKTree(k, n, rng)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = DeriveRNG(0, 1)
	}

	edges := g.Edges()
	toRemove := (len(edges) * p) / 100
	if toRemove > len(edges) {
		toRemove = len(edges)
	}

	perm := rng.Perm(len(edges))
	for i := 0; i < toRemove; i++ {
		e := edges[perm[i]]
		_ = g.RemoveEdge(e.ID)
	}

	return g, nil
}

// GenerateGuaranteedTreewidth repeatedly calls GeneratePartialKTree, keeping
// the first sample whose MMD+ lower bound is exactly k, up to maxAttempts
// tries. It returns ErrAttemptsExceeded if no such sample was found within
// the bound. Each discarded attempt is reported to logger, if non-nil.
func GenerateGuaranteedTreewidth(k, n, p int, rng *rand.Rand, maxAttempts int, logger Logger) (*core.Graph, error) {
	if rng == nil {
		rng = DeriveRNG(0, 2)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		g, err := GeneratePartialKTree(k, n, p, rng)
		if err != nil {
			return nil, err
		}

		input, _, _, err := cliquegraph.FromCoreGraph(g)
		if err != nil {
			return nil, err
		}
		if lowerbound.MaximumMinimumDegreePlus(input) == k {
			return g, nil
		}
		if logger != nil {
			logger.Printf("ktree: discarding attempt %d, MMD+ != %d", attempt, k)
		}
	}

	return nil, ErrAttemptsExceeded
}
