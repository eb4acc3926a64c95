package graph

// BuildDistances runs one breadth-first search from every vertex and returns
// the resulting dense V×V hop-count matrix. Pairs with no connecting path
// (the graph may be disconnected) are set to the sentinel Infinity() == V+1
// rather than a floating-point infinity, so the matrix can be stored and
// compared as plain integers throughout the rest of the pipeline.
//
// Complexity: O(V·(V+E)) time, O(V²) space.
func BuildDistances(g *Graph) (*IntMatrix, error) {
	v := g.V()
	m := newIntMatrix(v)
	sentinel := v + 1

	queue := make([]int, 0, v)
	visited := make([]bool, v)

	for src := 0; src < v; src++ {
		for i := range visited {
			visited[i] = false
		}
		queue = queue[:0]

		visited[src] = true
		queue = append(queue, src)
		m.set(src, src, 0)

		for head := 0; head < len(queue); head++ {
			cur := queue[head]
			dist := m.data[src*v+cur]

			neighbors, err := g.NeighborIndices(cur)
			if err != nil {
				return nil, err
			}
			for _, nb := range neighbors {
				if visited[nb] {
					continue
				}
				visited[nb] = true
				m.set(src, nb, dist+1)
				queue = append(queue, nb)
			}
		}

		for dst := 0; dst < v; dst++ {
			if !visited[dst] {
				m.set(src, dst, sentinel)
			}
		}
	}

	return m, nil
}
