package main

import (
	"fmt"
	"log"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mggg/coi-analysis/coidb"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a database from a graph file and a submission file",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := coidb.Build(coidb.BuildConfig{
			GraphPath:         cfg.Graph.Path,
			IDAttribute:       cfg.Graph.IDAttribute,
			StringIDs:         cfg.Graph.StringIDs,
			SubmissionPath:    cfg.Submission.Path,
			Compressed:        cfg.Submission.Compressed,
			TilesColumn:       cfg.Submission.TilesColumn,
			DistanceCachePath: cfg.GetDistanceCachePath(),
			Workers:           runtime.NumCPU(),
		})
		if err != nil {
			return fmt.Errorf("building database: %w", err)
		}

		if db.DropWarning.DroppedTiles > 0 {
			log.Println(db.DropWarning.String())
		}

		if err := db.Save(cfg.Snapshot.Path); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}

		fmt.Printf("Built database: %d units, %d submissions\n", db.Graph.V(), db.Submissions.N())
		fmt.Printf("Saved snapshot: %s\n", cfg.Snapshot.Path)

		return nil
	},
}
