package dissimilarity

import "math"

// hungarianAssignment solves the square minimum-cost assignment problem
// for an n×n cost matrix, returning colForRow where colForRow[i] is the
// column matched to row i. It is the classic O(n^3) shortest-augmenting-
// path Hungarian algorithm with row/column potentials.
//
// This is the one stdlib-only routine in this package: no Hungarian or
// linear-sum-assignment library appears anywhere in the retrieval pack
// (see DESIGN.md), so it is hand-written rather than borrowed.
func hungarianAssignment(cost [][]float64) []int {
	n := len(cost)
	const inf = math.MaxFloat64 / 4

	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = 1-based row currently matched to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	colForRow := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			colForRow[p[j]-1] = j - 1
		}
	}

	return colForRow
}
