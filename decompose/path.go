package decompose

import "github.com/katalvlaran/treewidth/cliquegraph"

// uniquePath returns the unique simple path between from and to in tree t,
// as a sequence of T-node ids including both endpoints. Because t is a
// tree, the path exists and is unique whenever both ids are present; a nil
// result means to was unreachable, which should never occur for a
// genuine tree decomposition in progress.
func uniquePath(t *cliquegraph.Graph, from, to int) []int {
	if from == to {
		return []int{from}
	}

	parent := map[int]int{from: -1}
	queue := []int{from}
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		if cur == to {
			break
		}
		for _, n := range t.Neighbors(cur) {
			if _, seen := parent[n]; !seen {
				parent[n] = cur
				queue = append(queue, n)
			}
		}
	}

	if _, ok := parent[to]; !ok {
		return nil
	}

	path := []int{}
	for cur := to; cur != -1; cur = parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// fillInternal extends every bag strictly between the endpoints of path
// (exclusive of both ends) with content. A path of length <= 2 has no
// internal nodes and is a no-op.
func fillInternal(t *cliquegraph.Graph, path []int, content cliquegraph.Bag) {
	if len(path) <= 2 {
		return
	}
	for _, n := range path[1 : len(path)-1] {
		t.ExtendBag(n, content)
	}
}

// pathFillAll implements the MSTAndFill fill step: for every unordered pair
// of T-nodes whose bags intersect, the intersection is propagated into
// every bag strictly between them on the unique tree path. Running it a
// second time on an already-valid T is idempotent, since every internal
// bag already satisfies the property being (re-)established.
func pathFillAll(t *cliquegraph.Graph) {
	ids := t.NodeIDs()
	type pair struct {
		a, b   int
		common cliquegraph.Bag
	}
	var pairs []pair
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			common := t.Bag(a).Intersection(t.Bag(b))
			if common.Len() > 0 {
				pairs = append(pairs, pair{a: a, b: b, common: common})
			}
		}
	}
	for _, p := range pairs {
		path := uniquePath(t, p.a, p.b)
		if path == nil {
			panic(ErrUnreachable)
		}
		fillInternal(t, path, p.common)
	}
}
