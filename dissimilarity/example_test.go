package dissimilarity_test

import (
	"fmt"

	"github.com/mggg/coi-analysis/dissimilarity"
	"github.com/mggg/coi-analysis/graph"
	"github.com/mggg/coi-analysis/submission"
)

// ExampleHausdorff computes the average-Hausdorff distance between two
// submissions on a 4-unit path graph: A={0,1}, B={2,3}.
func ExampleHausdorff() {
	g := graph.NewGraph()
	g.AddEdge("0", "1")
	g.AddEdge("1", "2")
	g.AddEdge("2", "3")

	d, err := graph.BuildDistances(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	a := submission.NewBitset(4)
	a.Set(0)
	a.Set(1)
	b := submission.NewBitset(4)
	b.Set(2)
	b.Set(3)

	v, err := dissimilarity.Hausdorff(a, b, d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
	// Output:
	// 1.5
}
