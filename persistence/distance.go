package persistence

import "github.com/mggg/coi-analysis/graph"

// SaveDistanceCSV writes the distance oracle to path as a comma-delimited
// cache file.
func SaveDistanceCSV(path string, m *graph.IntMatrix) error {
	return graph.WriteDistanceCSVFile(path, m)
}

// LoadDistanceCSV reads a distance-oracle cache from path, validating its
// dimension against wantDim. On a dimension mismatch the caller is
// expected to fall back to recomputation rather than fail.
func LoadDistanceCSV(path string, wantDim int) (*graph.IntMatrix, error) {
	return graph.ReadDistanceCSVFile(path, wantDim)
}
