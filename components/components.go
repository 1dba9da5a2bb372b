// Package components partitions an input graph into its connected
// components, so the treewidth engine can process each independently and
// return the maximum width across all of them.
package components

import (
	"sort"

	"github.com/katalvlaran/treewidth/bfs"
	"github.com/katalvlaran/treewidth/core"
)

// Partition returns the vertex ids of each connected component of g, each
// component sorted ascending, components ordered by their smallest member.
// It reuses bfs.BFS directly rather than re-implementing traversal: each
// unseen vertex seeds one BFS run, and every vertex BFS reaches belongs to
// that component.
func Partition(g *core.Graph) ([][]string, error) {
	seen := make(map[string]bool)
	var comps [][]string

	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		result, err := bfs.BFS(g, v)
		if err != nil {
			return nil, err
		}
		comp := make([]string, len(result.Order))
		copy(comp, result.Order)
		sort.Strings(comp)
		for _, id := range comp {
			seen[id] = true
		}
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })
	return comps, nil
}
