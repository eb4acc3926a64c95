package graph

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteDistanceCSVFile writes m to path as a comma-delimited grid of
// integers, one row per line, suitable for re-reading with ReadDistanceCSVFile
// to skip recomputing BuildDistances on a later run.
func WriteDistanceCSVFile(path string, m *IntMatrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graph: creating distance cache: %w", err)
	}
	defer f.Close()

	return WriteDistanceCSV(f, m)
}

// WriteDistanceCSV writes m to w in the same format as WriteDistanceCSVFile.
func WriteDistanceCSV(w io.Writer, m *IntMatrix) error {
	cw := csv.NewWriter(w)
	n := m.Dim()
	record := make([]string, n)

	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			record[j] = strconv.Itoa(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("graph: writing distance cache row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadDistanceCSVFile reads a distance matrix previously written by
// WriteDistanceCSVFile and validates it against wantDim (typically g.V()).
// ErrDimensionMismatch is returned if the cached matrix's dimension differs.
func ReadDistanceCSVFile(path string, wantDim int) (*IntMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: opening distance cache: %w", err)
	}
	defer f.Close()

	return ReadDistanceCSV(f, wantDim)
}

// ReadDistanceCSV reads a distance matrix from r in the format written by
// WriteDistanceCSV, validating its dimension against wantDim.
func ReadDistanceCSV(r io.Reader, wantDim int) (*IntMatrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("graph: parsing distance cache: %w", err)
	}

	n := len(rows)
	if n != wantDim || (n > 0 && len(rows[0]) != wantDim) {
		return nil, fmt.Errorf("%w: cache has %d rows, expected %d", ErrDimensionMismatch, n, wantDim)
	}

	m := newIntMatrix(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrDimensionMismatch, i, len(row), n)
		}
		for j, cell := range row {
			v, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("graph: distance cache cell (%d,%d): %w", i, j, err)
			}
			m.set(i, j, v)
		}
	}

	return m, nil
}
