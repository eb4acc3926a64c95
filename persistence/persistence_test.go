package persistence_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mggg/coi-analysis/cluster"
	"github.com/mggg/coi-analysis/graph"
	"github.com/mggg/coi-analysis/persistence"
	"github.com/mggg/coi-analysis/submission"
)

func TestDistanceCSVRoundTrip(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddEdge("0", "1"))
	require.NoError(t, g.AddEdge("1", "2"))
	d, err := graph.BuildDistances(g)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "distances.csv")
	require.NoError(t, persistence.SaveDistanceCSV(path, d))

	loaded, err := persistence.LoadDistanceCSV(path, d.Dim())
	require.NoError(t, err)

	for i := 0; i < d.Dim(); i++ {
		for j := 0; j < d.Dim(); j++ {
			want, _ := d.At(i, j)
			got, _ := loaded.At(i, j)
			require.Equal(t, want, got)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	bits := submission.NewBitset(4)
	bits.Set(1)
	bits.Set(3)

	table := &submission.Table{
		V:    4,
		Bits: []submission.Bitset{bits},
		Metadata: []submission.MetadataColumn{
			{Name: "id", Values: []string{"1"}},
		},
	}

	snap := persistence.Snapshot{
		GraphUnitIDs:      []string{"a", "b", "c", "d"},
		GraphAdjacency:    [][]int{{1}, {0, 2}, {1, 3}, {2}},
		IDAttribute:       "GEOID10",
		DistanceDim:       4,
		DistanceData:      []int{0, 1, 2, 3, 1, 0, 1, 2, 2, 1, 0, 1, 3, 2, 1, 0},
		Submission:        persistence.SnapshotSubmissionTable(table),
		DissimilarityDim:  1,
		DissimilarityData: []float64{0},
		DendrogramN:       1,
		DendrogramSteps:   []cluster.Step{},
	}

	path := filepath.Join(t.TempDir(), "snapshot.db")
	require.NoError(t, persistence.SaveSnapshot(path, snap))

	loaded, err := persistence.LoadSnapshot(path)
	require.NoError(t, err)

	require.Equal(t, snap.GraphUnitIDs, loaded.GraphUnitIDs)
	require.Equal(t, snap.GraphAdjacency, loaded.GraphAdjacency)
	require.Equal(t, snap.DistanceData, loaded.DistanceData)

	restoredTable := persistence.RestoreSubmissionTable(loaded.Submission)
	require.Equal(t, table.V, restoredTable.V)
	require.Equal(t, table.Bits[0].Indices(), restoredTable.Bits[0].Indices())
	require.Equal(t, table.Metadata, restoredTable.Metadata)
}

func TestLoadSnapshotMissingReturnsErrNoSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	_, err := persistence.LoadSnapshot(path)
	require.ErrorIs(t, err, persistence.ErrNoSnapshot)
}
