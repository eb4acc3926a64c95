package graph

// FromAdjacency rebuilds a Graph from a flat unit-id list and a matching
// adjacency list (index i's neighbors by index), the shape a Snapshot
// restores a Graph from.
func FromAdjacency(ids []string, adjacency [][]int) (*Graph, error) {
	g := NewGraph()
	for _, id := range ids {
		if _, err := g.AddUnit(id); err != nil {
			return nil, err
		}
	}

	for i, neighbors := range adjacency {
		if i >= len(ids) {
			break
		}
		fromID, _ := g.UnitID(i)
		for _, j := range neighbors {
			if j < 0 || j >= len(ids) {
				return nil, ErrMalformedAdjacency
			}
			toID, _ := g.UnitID(j)
			if err := g.AddEdge(fromID, toID); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// ToAdjacency returns the flat unit-id list and adjacency list a Snapshot
// stores, the inverse of FromAdjacency.
func ToAdjacency(g *Graph) ([]string, [][]int) {
	ids := g.UnitIDs()
	adjacency := make([][]int, len(ids))
	for i := range ids {
		neighbors, _ := g.NeighborIndices(i)
		cp := make([]int, len(neighbors))
		copy(cp, neighbors)
		adjacency[i] = cp
	}

	return ids, adjacency
}
