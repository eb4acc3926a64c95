package coidb

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mggg/coi-analysis/cluster"
	"github.com/mggg/coi-analysis/dissimilarity"
	"github.com/mggg/coi-analysis/graph"
	"github.com/mggg/coi-analysis/markov"
	"github.com/mggg/coi-analysis/persistence"
	"github.com/mggg/coi-analysis/plot"
	"github.com/mggg/coi-analysis/submission"
)

// BuildConfig configures Build: where the adjacency graph and submission
// file live, how to read the submission file, and how (or whether) to use
// a distance-matrix cache.
type BuildConfig struct {
	GraphPath      string
	IDAttribute    string // defaults to "GEOID10"
	StringIDs      bool

	SubmissionPath string
	Compressed     bool
	TilesColumn    string // defaults to "tiles"

	DistanceCachePath string // if set, loaded when present and matching the graph; otherwise recomputed and written
	Workers           int    // BulkHausdorff worker count, defaults to 1
}

// Database is the fully constructed analysis: the adjacency graph, its
// distance oracle, the ingested submissions, their pairwise dissimilarity
// matrix, and the complete-linkage dendrogram over it. It is the Go
// rendering of coi_cluster_database from the original source.
type Database struct {
	Graph         *graph.Graph
	Distances     *graph.IntMatrix
	Submissions   *submission.Table
	Dissimilarity *dissimilarity.Matrix
	Dendrogram    *cluster.Dendrogram

	DropWarning submission.DropWarning
}

// Build loads the graph and submission file named by cfg, computes (or
// loads from cache) the distance matrix, computes the dissimilarity
// matrix via BulkHausdorff, and runs complete-linkage clustering over it.
func Build(cfg BuildConfig) (*Database, error) {
	idAttribute := cfg.IDAttribute
	if idAttribute == "" {
		idAttribute = "GEOID10"
	}
	tilesColumn := cfg.TilesColumn
	if tilesColumn == "" {
		tilesColumn = "tiles"
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	g, err := graph.LoadNodeLinkFile(cfg.GraphPath,
		graph.WithIDAttribute(idAttribute), graph.WithStringIDs(cfg.StringIDs))
	if err != nil {
		return nil, fmt.Errorf("coidb: loading graph: %w", err)
	}

	distances, err := resolveDistances(g, cfg.DistanceCachePath)
	if err != nil {
		return nil, err
	}

	submissionFile, err := os.Open(cfg.SubmissionPath)
	if err != nil {
		return nil, fmt.Errorf("coidb: opening submission file: %w", err)
	}
	defer submissionFile.Close()

	var table *submission.Table
	var drop submission.DropWarning
	if cfg.Compressed {
		table, drop, err = submission.LoadCompressed(submissionFile, g, tilesColumn)
	} else {
		table, drop, err = submission.LoadWide(submissionFile, g)
	}
	if err != nil {
		return nil, fmt.Errorf("coidb: loading submissions: %w", err)
	}

	dissim, err := dissimilarity.BulkHausdorff(table, distances, workers)
	if err != nil {
		return nil, fmt.Errorf("coidb: computing dissimilarity: %w", err)
	}

	sanitized := dissim.SanitizeForClustering(g.V())
	condensed := cluster.Condense(sanitized.Dim(), func(i, j int) float64 {
		v, _ := sanitized.At(i, j)

		return v
	})
	dendrogram := cluster.CompleteLinkage(condensed, sanitized.Dim())

	return &Database{
		Graph:         g,
		Distances:     distances,
		Submissions:   table,
		Dissimilarity: dissim,
		Dendrogram:    dendrogram,
		DropWarning:   drop,
	}, nil
}

// resolveDistances loads the distance matrix from cachePath when it
// exists and its dimension matches the graph, otherwise recomputes it
// (optionally writing it back to cachePath) rather than trusting a stale
// or mismatched cache.
func resolveDistances(g *graph.Graph, cachePath string) (*graph.IntMatrix, error) {
	if cachePath != "" {
		if cached, err := persistence.LoadDistanceCSV(cachePath, g.V()); err == nil {
			return cached, nil
		}
	}

	distances, err := graph.BuildDistances(g)
	if err != nil {
		return nil, fmt.Errorf("coidb: building distance matrix: %w", err)
	}

	if cachePath != "" {
		if err := persistence.SaveDistanceCSV(cachePath, distances); err != nil {
			return nil, fmt.Errorf("coidb: caching distance matrix: %w", err)
		}
	}

	return distances, nil
}

// Save writes the full database as a single opaque snapshot at path.
func (db *Database) Save(path string) error {
	ids, adjacency := graph.ToAdjacency(db.Graph)

	snap := persistence.Snapshot{
		GraphUnitIDs:   ids,
		GraphAdjacency: adjacency,

		DistanceDim:  db.Distances.Dim(),
		DistanceData: matrixInts(db.Distances),

		Submission: persistence.SnapshotSubmissionTable(db.Submissions),

		DissimilarityDim:  db.Dissimilarity.Dim(),
		DissimilarityData: matrixFloats(db.Dissimilarity),

		DendrogramN:     db.Dendrogram.N,
		DendrogramSteps: db.Dendrogram.Steps,
	}

	return persistence.SaveSnapshot(path, snap)
}

// Load restores a Database previously saved with Save.
func Load(path string) (*Database, error) {
	snap, err := persistence.LoadSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("coidb: loading snapshot: %w", err)
	}

	g, err := graph.FromAdjacency(snap.GraphUnitIDs, snap.GraphAdjacency)
	if err != nil {
		return nil, fmt.Errorf("coidb: restoring graph: %w", err)
	}

	distances := graph.FromFlat(snap.DistanceDim, snap.DistanceData)
	dissim := dissimilarity.FromFlat(snap.DissimilarityDim, snap.DissimilarityData)
	table := persistence.RestoreSubmissionTable(snap.Submission)

	return &Database{
		Graph:         g,
		Distances:     distances,
		Submissions:   table,
		Dissimilarity: dissim,
		Dendrogram:    &cluster.Dendrogram{N: snap.DendrogramN, Steps: snap.DendrogramSteps},
	}, nil
}

// PlotDendrogram renders the database's dendrogram to w using p.
func (db *Database) PlotDendrogram(w io.Writer, p plot.Plotter) error {
	return p.Plot(db.Dendrogram, w)
}

// ClustersFromThreshold cuts the dendrogram at height and returns the
// submission table with a "clusters" metadata column holding each
// submission's cluster label.
func (db *Database) ClustersFromThreshold(height float64) *submission.Table {
	labels := cluster.CutByHeight(db.Dendrogram, height)

	return db.Submissions.WithLabelColumn("clusters", labelStrings(labels))
}

// ClustersFromNumber cuts the dendrogram down to at most k clusters and
// returns the submission table with a "clusters" metadata column.
func (db *Database) ClustersFromNumber(k int) *submission.Table {
	labels := cluster.CutByCount(db.Dendrogram, k)

	return db.Submissions.WithLabelColumn("clusters", labelStrings(labels))
}

// NewChain builds a Metropolis chain from cfg by passing it unchanged to
// markov.NewChain. It does not read the database's distance or
// dissimilarity matrices: cfg.N, cfg.ScoreFns and the rest of cfg are
// left to the caller (markov.GeoChain, SemanticChain and GeoSemanticChain
// build such a chain from a dissimilarity matrix directly).
func (db *Database) NewChain(cfg markov.ChainConfig) *markov.Chain {
	return markov.NewChain(cfg)
}

func labelStrings(labels []int) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = strconv.Itoa(l)
	}

	return out
}

func matrixInts(m *graph.IntMatrix) []int {
	n := m.Dim()
	out := make([]int, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			out = append(out, v)
		}
	}

	return out
}

func matrixFloats(m *dissimilarity.Matrix) []float64 {
	n := m.Dim()
	out := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			out = append(out, v)
		}
	}

	return out
}
