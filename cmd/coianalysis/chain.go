package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mggg/coi-analysis/coidb"
	"github.com/mggg/coi-analysis/markov"
)

var chainClusters int

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Refine a clustering with a Metropolis Markov chain over submission dissimilarity",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := coidb.Load(cfg.Snapshot.Path)
		if err != nil {
			return fmt.Errorf("loading database: %w", err)
		}

		k := chainClusters
		if k == 0 {
			k = cfg.Cluster.Count
		}
		if k < 2 {
			return fmt.Errorf("chain: need at least 2 clusters, got %d", k)
		}

		chain := markov.GeoChain(db.Dissimilarity, cfg.Chain.Beta, k, cfg.Chain.Length, cfg.Chain.Seed)
		final := chain.Run()

		idCol, _ := db.Submissions.Column("id")

		return writeAssignment(os.Stdout, idCol.Values, final)
	},
}

func init() {
	chainCmd.Flags().IntVar(&chainClusters, "clusters", 0, "number of clusters to refine toward")
}

func writeAssignment(w *os.File, ids []string, state markov.State) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "cluster"}); err != nil {
		return err
	}

	for i, cluster := range state.Assignment {
		id := strconv.Itoa(i)
		if i < len(ids) {
			id = ids[i]
		}
		if err := cw.Write([]string{id, strconv.Itoa(cluster)}); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
