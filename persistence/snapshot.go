package persistence

import (
	"github.com/mggg/coi-analysis/cluster"
	"github.com/mggg/coi-analysis/submission"
)

// SubmissionSnapshot is the gob-encodable form of a submission.Table.
type SubmissionSnapshot struct {
	V        int
	BitsV    []int
	BitWords [][]uint64
	Metadata []submission.MetadataColumn
}

// Snapshot is the full opaque blob form of a database: the graph, its
// distance matrix, the submission table, the dissimilarity matrix, and
// the dendrogram, captured as plain exported fields so encoding/gob can
// serialize them without reaching into any package's unexported runtime
// state (graph.Graph's mutexes, in particular, are never part of this
// shape).
type Snapshot struct {
	GraphUnitIDs   []string
	GraphAdjacency [][]int
	IDAttribute    string

	DistanceDim  int
	DistanceData []int

	Submission SubmissionSnapshot

	DissimilarityDim  int
	DissimilarityData []float64

	DendrogramN     int
	DendrogramSteps []cluster.Step
}

// SnapshotSubmissionTable converts a submission.Table to its gob-encodable form.
func SnapshotSubmissionTable(t *submission.Table) SubmissionSnapshot {
	snap := SubmissionSnapshot{
		V:        t.V,
		BitsV:    make([]int, len(t.Bits)),
		BitWords: make([][]uint64, len(t.Bits)),
		Metadata: t.Metadata,
	}
	for i, b := range t.Bits {
		snap.BitsV[i] = b.Len()
		snap.BitWords[i] = b.Words()
	}

	return snap
}

// RestoreSubmissionTable converts a SubmissionSnapshot back to a submission.Table.
func RestoreSubmissionTable(snap SubmissionSnapshot) *submission.Table {
	t := &submission.Table{
		V:        snap.V,
		Bits:     make([]submission.Bitset, len(snap.BitWords)),
		Metadata: snap.Metadata,
	}
	for i, words := range snap.BitWords {
		t.Bits[i] = submission.BitsetFromWords(snap.BitsV[i], words)
	}

	return t
}
