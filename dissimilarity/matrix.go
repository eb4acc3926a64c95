package dissimilarity

import (
	"fmt"
	"math"
)

// Matrix is a dense, row-major N×N symmetric matrix of non-negative real
// dissimilarities, modeled on the same flat-slice storage shape as
// graph.IntMatrix, specialized to float64 since dissimilarities are
// averages, not hop counts.
type Matrix struct {
	n    int
	data []float64
}

func newMatrix(n int) *Matrix {
	return &Matrix{n: n, data: make([]float64, n*n)}
}

// FromFlat rebuilds a Matrix from a previously flattened row-major data
// slice of length n*n, the shape persistence.Snapshot stores.
func FromFlat(n int, data []float64) *Matrix {
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Matrix{n: n, data: cp}
}

// Dim returns the matrix's dimension N.
func (m *Matrix) Dim() int { return m.n }

func (m *Matrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("dissimilarity: index (%d,%d) out of range for dim %d", i, j, m.n)
	}

	return i*m.n + j, nil
}

// At returns the dissimilarity between submissions i and j.
func (m *Matrix) At(i, j int) (float64, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

func (m *Matrix) set(i, j int, v float64) {
	m.data[i*m.n+j] = v
}

// Condensed returns the upper-triangular condensed vector of length
// N(N-1)/2 in row-major order, the same vector cluster.Condense produces
// and cluster.CompleteLinkage expects.
func (m *Matrix) Condensed() []float64 {
	out := make([]float64, 0, m.n*(m.n-1)/2)
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			out = append(out, m.data[i*m.n+j])
		}
	}

	return out
}

// Symmetric reports whether m is symmetric with a zero diagonal.
func (m *Matrix) Symmetric() bool {
	for i := 0; i < m.n; i++ {
		if m.data[i*m.n+i] != 0 {
			return false
		}
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] != m.data[j*m.n+i] {
				return false
			}
		}
	}

	return true
}

// SanitizeForClustering returns a copy of m with every non-finite entry
// (NaN, +/-Inf) and every occurrence of the unreachable-pair sentinel V+1
// replaced by 2*(V+1). Both need substituting: the sentinel is finite on
// purpose so ordinary arithmetic over it stays well-defined upstream, but
// linkage needs it strictly larger than any real pairwise distance, which
// 2*(V+1) guarantees while V+1 itself would not. v is the graph's vertex
// count, i.e. the distance oracle's V, not m's own dimension.
func (m *Matrix) SanitizeForClustering(v int) *Matrix {
	out := newMatrix(m.n)
	sentinel := float64(v + 1)
	replacement := 2 * sentinel
	for idx, val := range m.data {
		if math.IsNaN(val) || math.IsInf(val, 0) || val == sentinel {
			out.data[idx] = replacement
		} else {
			out.data[idx] = val
		}
	}

	return out
}
