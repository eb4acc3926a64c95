package graph

import "sort"

// AddUnit inserts a unit with the given external UnitId if absent, and
// returns its internal index either way. Indices are assigned in the order
// units are first seen, matching the node-link loader's "position in load
// order" rule.
//
// Complexity: O(1) amortized.
func (g *Graph) AddUnit(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyUnitID
	}

	g.muUnits.Lock()
	if idx, exists := g.idIndex[id]; exists {
		g.muUnits.Unlock()

		return idx, nil
	}
	idx := len(g.units)
	g.units = append(g.units, unit{id: id, index: idx})
	g.idIndex[id] = idx
	g.muUnits.Unlock()

	g.muAdj.Lock()
	g.adjacency = append(g.adjacency, nil)
	g.muAdj.Unlock()

	return idx, nil
}

// AddEdge connects the units named by and to (undirected). Either endpoint
// is auto-added if not already present. Self-loops and repeated calls for
// the same pair are no-ops beyond the first.
//
// Complexity: O(deg) for the duplicate check.
func (g *Graph) AddEdge(from, to string) error {
	fi, err := g.AddUnit(from)
	if err != nil {
		return err
	}
	ti, err := g.AddUnit(to)
	if err != nil {
		return err
	}
	if fi == ti {
		return nil
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	g.adjacency[fi] = insertSorted(g.adjacency[fi], ti)
	g.adjacency[ti] = insertSorted(g.adjacency[ti], fi)

	return nil
}

// insertSorted inserts v into the sorted, deduplicated slice ns.
func insertSorted(ns []int, v int) []int {
	i := sort.SearchInts(ns, v)
	if i < len(ns) && ns[i] == v {
		return ns
	}
	ns = append(ns, 0)
	copy(ns[i+1:], ns[i:])
	ns[i] = v

	return ns
}

// NeighborIndices returns the sorted internal indices adjacent to index i.
// The returned slice must not be mutated by the caller.
func (g *Graph) NeighborIndices(i int) ([]int, error) {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	if i < 0 || i >= len(g.adjacency) {
		return nil, ErrUnitNotFound
	}

	return g.adjacency[i], nil
}
