package coidb_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mggg/coi-analysis/coidb"
)

// Example builds a database from a 4-unit path graph and three
// wide-format submissions, then prints the cluster label assigned to
// each submission when cut down to two clusters.
func Example() {
	dir, err := os.MkdirTemp("", "coidb-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	graphPath := filepath.Join(dir, "graph.json")
	submissionPath := filepath.Join(dir, "submissions.csv")

	graphJSON := `{
	  "nodes": [{"GEOID10": "0"}, {"GEOID10": "1"}, {"GEOID10": "2"}, {"GEOID10": "3"}],
	  "adjacency": [[{"id": 1}], [{"id": 0}, {"id": 2}], [{"id": 1}, {"id": 3}], [{"id": 2}]]
	}`
	wideCSV := "id,submission_id,datetime,0,1,2,3\n" +
		"1,s1,2020-01-01,1,1,0,0\n" +
		"2,s2,2020-01-01,0,0,1,1\n" +
		"3,s3,2020-01-01,1,1,1,0\n"

	if err := os.WriteFile(graphPath, []byte(graphJSON), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := os.WriteFile(submissionPath, []byte(wideCSV), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	db, err := coidb.Build(coidb.BuildConfig{
		GraphPath:      graphPath,
		StringIDs:      true,
		SubmissionPath: submissionPath,
		Workers:        1,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	table := db.ClustersFromNumber(2)
	col, _ := table.Column("clusters")
	fmt.Println(col.Values)
	// Output:
	// [0 1 0]
}
