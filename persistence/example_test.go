package persistence_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mggg/coi-analysis/graph"
	"github.com/mggg/coi-analysis/persistence"
)

// ExampleSaveDistanceCSV builds a 4-unit path graph's distance matrix,
// round-trips it through a CSV cache file, and prints the reloaded row 0.
func ExampleSaveDistanceCSV() {
	g := graph.NewGraph()
	g.AddEdge("0", "1")
	g.AddEdge("1", "2")
	g.AddEdge("2", "3")

	d, err := graph.BuildDistances(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path := filepath.Join(os.TempDir(), "coianalysis-example-distances.csv")
	defer os.Remove(path)

	if err := persistence.SaveDistanceCSV(path, d); err != nil {
		fmt.Println("error:", err)
		return
	}

	loaded, err := persistence.LoadDistanceCSV(path, d.Dim())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	row, _ := loaded.Row(0)
	fmt.Println(row)
	// Output:
	// [0 1 2 3]
}
