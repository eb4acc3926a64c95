package graph

import "fmt"

// IntMatrix is a dense, row-major V×V matrix of non-negative integers,
// modeled on the flat-slice storage and indexOf/At/Set shape of
// lvlath/matrix.Dense, specialized to integers and to the "V+1" infinity
// sentinel this package's distances use in place of floating-point +Inf.
//
// IntMatrix is immutable once returned by BuildDistances or ReadDistanceCSV.
type IntMatrix struct {
	n    int   // both dimensions; always square
	data []int // flat backing storage, length n*n
}

// newIntMatrix allocates an n×n IntMatrix of zeros.
func newIntMatrix(n int) *IntMatrix {
	return &IntMatrix{n: n, data: make([]int, n*n)}
}

// FromFlat rebuilds an IntMatrix from a previously flattened row-major
// data slice of length n*n, the shape persistence.Snapshot stores.
func FromFlat(n int, data []int) *IntMatrix {
	cp := make([]int, len(data))
	copy(cp, data)

	return &IntMatrix{n: n, data: cp}
}

// Dim returns the matrix's dimension V.
func (m *IntMatrix) Dim() int { return m.n }

// Infinity returns the sentinel value (V+1) this matrix uses for unreachable pairs.
func (m *IntMatrix) Infinity() int { return m.n + 1 }

func (m *IntMatrix) index(i, j int) (int, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("graph: IntMatrix index (%d,%d) out of range for dim %d: %w", i, j, m.n, ErrUnitNotFound)
	}

	return i*m.n + j, nil
}

// At returns the distance between units i and j.
func (m *IntMatrix) At(i, j int) (int, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// set assigns the distance between i and j; unexported, called only during construction.
func (m *IntMatrix) set(i, j, v int) {
	m.data[i*m.n+j] = v
}

// Row returns a copy of row i.
func (m *IntMatrix) Row(i int) ([]int, error) {
	if i < 0 || i >= m.n {
		return nil, fmt.Errorf("graph: row %d out of range for dim %d: %w", i, m.n, ErrUnitNotFound)
	}
	row := make([]int, m.n)
	copy(row, m.data[i*m.n:(i+1)*m.n])

	return row, nil
}

// Symmetric reports whether m[i][j] == m[j][i] for every pair, and whether
// the diagonal is all zero.
func (m *IntMatrix) Symmetric() bool {
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
