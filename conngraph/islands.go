package conngraph

import "sort"

// unionFind is a classic disjoint-set over node indices with union by size.
// find is iterative with path compression: node counts here are tens, but
// an iterative walk never depends on stack depth regardless.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), size: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

// find returns the root of i, compressing the path on the way back.
func (uf *unionFind) find(i int) int {
	root := i
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[i] != root {
		uf.parent[i], i = root, uf.parent[i]
	}
	return root
}

// union merges the sets of a and b, attaching the smaller under the larger.
func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
}

// Islands partitions the nodes into connected components over non-blocked
// edges. Each island is a sorted slice of node IDs; islands are ordered by
// descending size, ties broken by the first ID, so output is deterministic.
//
// Complexity: O(V + E α(V)).
func (g *Graph) Islands() [][]string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	uf := newUnionFind(len(ids))
	for _, e := range g.edges {
		if e.Kind == EdgeBlocked {
			continue
		}
		uf.union(idx[e.From], idx[e.To])
	}

	byRoot := make(map[int][]string)
	for i, id := range ids {
		root := uf.find(i)
		byRoot[root] = append(byRoot[root], id)
	}
	islands := make([][]string, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Strings(members)
		islands = append(islands, members)
	}
	sort.Slice(islands, func(i, j int) bool {
		if len(islands[i]) != len(islands[j]) {
			return len(islands[i]) > len(islands[j])
		}
		return islands[i][0] < islands[j][0]
	})
	return islands
}

// MainsConnected reports whether every pair of main nodes shares an island.
// Vacuously true with fewer than two mains.
func (g *Graph) MainsConnected() bool {
	mains := g.NodesByRole(RoleMain)
	if len(mains) < 2 {
		return true
	}
	islands := g.Islands()
	home := islandIndex(islands)
	first := home[mains[0].ID]
	for _, m := range mains[1:] {
		if home[m.ID] != first {
			return false
		}
	}
	return true
}

// MainsReachNatural reports whether every main shares an island with at
// least one natural. Vacuously true when the graph has no mains.
func (g *Graph) MainsReachNatural() bool {
	mains := g.NodesByRole(RoleMain)
	if len(mains) == 0 {
		return true
	}
	islands := g.Islands()
	home := islandIndex(islands)
	naturalIslands := make(map[int]bool)
	for _, n := range g.NodesByRole(RoleNatural) {
		naturalIslands[home[n.ID]] = true
	}
	for _, m := range mains {
		if !naturalIslands[home[m.ID]] {
			return false
		}
	}
	return true
}

// islandIndex maps every node ID to its island's position in the partition.
func islandIndex(islands [][]string) map[string]int {
	home := make(map[string]int)
	for i, members := range islands {
		for _, id := range members {
			home[id] = i
		}
	}
	return home
}
