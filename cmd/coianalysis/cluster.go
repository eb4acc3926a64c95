package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mggg/coi-analysis/coidb"
	"github.com/mggg/coi-analysis/submission"
)

var (
	clusterCount  int
	clusterHeight float64
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cut the database's dendrogram into clusters and print the labeled table",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := coidb.Load(cfg.Snapshot.Path)
		if err != nil {
			return fmt.Errorf("loading database: %w", err)
		}

		count := clusterCount
		if count == 0 {
			count = cfg.Cluster.Count
		}
		height := clusterHeight
		if height == 0 {
			height = cfg.Cluster.Height
		}

		var table *submission.Table
		if count > 0 {
			table = db.ClustersFromNumber(count)
		} else {
			table = db.ClustersFromThreshold(height)
		}

		return writeLabeledTable(os.Stdout, table)
	},
}

func init() {
	clusterCmd.Flags().IntVar(&clusterCount, "count", 0, "cut to at most this many clusters")
	clusterCmd.Flags().Float64Var(&clusterHeight, "height", 0, "cut at this dendrogram height")
}

// writeLabeledTable writes a submission.Table's metadata columns as CSV,
// the "clusters" column included, to w.
func writeLabeledTable(w *os.File, table *submission.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(table.Metadata))
	for i, c := range table.Metadata {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for row := 0; row < table.N(); row++ {
		record := make([]string, len(table.Metadata))
		for i, c := range table.Metadata {
			record[i] = c.Values[row]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
