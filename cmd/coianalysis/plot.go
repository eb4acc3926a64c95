package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mggg/coi-analysis/coidb"
	"github.com/mggg/coi-analysis/plot"
)

var plotOutput string

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the database's dendrogram as a Graphviz DOT graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := coidb.Load(cfg.Snapshot.Path)
		if err != nil {
			return fmt.Errorf("loading database: %w", err)
		}

		w := os.Stdout
		if plotOutput != "" {
			f, err := os.Create(plotOutput)
			if err != nil {
				return fmt.Errorf("creating plot output: %w", err)
			}
			defer f.Close()
			w = f
		}

		return db.PlotDendrogram(w, plot.DOTWriter{})
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "write DOT output to this file instead of stdout")
}
