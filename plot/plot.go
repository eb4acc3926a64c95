package plot

import (
	"fmt"
	"io"

	"github.com/mggg/coi-analysis/cluster"
)

// Plotter renders a dendrogram to w. Concrete renderers are external
// collaborators; DOTWriter is the one implementation this module carries.
type Plotter interface {
	Plot(d *cluster.Dendrogram, w io.Writer) error
}

// DOTWriter renders a dendrogram as a Graphviz DOT graph: one node per
// leaf and per merge step, one edge from each merge to the two clusters
// it joins, labelled with the merge height.
type DOTWriter struct{}

var _ Plotter = DOTWriter{}

func (DOTWriter) Plot(d *cluster.Dendrogram, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "graph dendrogram {"); err != nil {
		return err
	}

	for i := 0; i < d.N; i++ {
		if _, err := fmt.Fprintf(w, "  leaf%d [label=\"%d\"];\n", i, i); err != nil {
			return err
		}
	}

	for idx, step := range d.Steps {
		node := d.N + idx
		if _, err := fmt.Fprintf(w, "  merge%d [label=\"%.4f\"];\n", node, step.Height); err != nil {
			return err
		}

		for _, child := range []int{step.A, step.B} {
			var name string
			if child < d.N {
				name = fmt.Sprintf("leaf%d", child)
			} else {
				name = fmt.Sprintf("merge%d", child)
			}
			if _, err := fmt.Fprintf(w, "  merge%d -- %s;\n", node, name); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
