package dissimilarity

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/mggg/coi-analysis/graph"
	"github.com/mggg/coi-analysis/submission"
)

// Hausdorff computes the average directed Hausdorff distance between
// submissions a and b under distance oracle d, symmetrized by taking the
// max of the two directions:
//
//	d_AB = mean over a in A of min over b in B of d(a, b)
//	d_BA = mean over b in B of min over a in A of d(b, a)
//	dissim(A, B) = max(d_AB, d_BA)
//
// An empty submission yields the distance oracle's own unreachable-pair
// sentinel, V+1, rather than a true infinity: it stays finite so ordinary
// arithmetic keeps working, and Matrix.SanitizeForClustering substitutes
// 2*(V+1) for it (and for any other V+1 entry) before clustering sees it.
func Hausdorff(a, b submission.Bitset, d *graph.IntMatrix) (float64, error) {
	return hausdorffIndices(a.Indices(), b.Indices(), d)
}

func hausdorffIndices(a, b []int, d *graph.IntMatrix) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return float64(d.Dim() + 1), nil
	}

	dAB, err := meanOfMins(a, b, d)
	if err != nil {
		return 0, err
	}
	dBA, err := meanOfMins(b, a, d)
	if err != nil {
		return 0, err
	}

	return math.Max(dAB, dBA), nil
}

// meanOfMins computes mean over x in from of min over y in to of d(x, y).
func meanOfMins(from, to []int, d *graph.IntMatrix) (float64, error) {
	sum := 0.0
	for _, x := range from {
		min := math.MaxInt64
		for _, y := range to {
			v, err := d.At(x, y)
			if err != nil {
				return 0, err
			}
			if v < min {
				min = v
			}
		}
		sum += float64(min)
	}

	return sum / float64(len(from)), nil
}

// cellResult is one off-diagonal dissimilarity entry computed by a
// BulkHausdorff worker, carrying its own (i, j) index so assembly is
// order-independent regardless of which worker finishes first.
type cellResult struct {
	i, j int
	v    float64
}

// BulkHausdorff computes the full N×N dissimilarity matrix for table under
// distance oracle d, fanning rows across workers goroutines (default 1 if
// workers < 1). Each worker reads the shared-immutable distance oracle and
// submission indices and writes into its own result slice; the matrix is
// assembled by this function after every worker finishes, so the outcome
// does not depend on finishing order.
func BulkHausdorff(table *submission.Table, d *graph.IntMatrix, workers int) (*Matrix, error) {
	return BulkHausdorffContext(context.Background(), table, d, workers)
}

// BulkHausdorffContext is BulkHausdorff with a caller-supplied parent
// context for the errgroup. The workers do not check the context, so
// cancelling it does not stop a sweep in progress.
func BulkHausdorffContext(ctx context.Context, table *submission.Table, d *graph.IntMatrix, workers int) (*Matrix, error) {
	n := table.N()
	m := newMatrix(n)
	if n == 0 {
		return m, nil
	}
	if workers < 1 {
		workers = 1
	}

	indices := make([][]int, n)
	for i := range indices {
		indices[i] = table.Bits[i].Indices()
	}

	perWorker := make([][]cellResult, workers)
	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			var local []cellResult
			for i := w; i < n; i += workers {
				for j := i + 1; j < n; j++ {
					v, err := hausdorffIndices(indices[i], indices[j], d)
					if err != nil {
						return err
					}
					local = append(local, cellResult{i: i, j: j, v: v})
				}
			}
			perWorker[w] = local

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, results := range perWorker {
		for _, c := range results {
			m.set(c.i, c.j, c.v)
			m.set(c.j, c.i, c.v)
		}
	}

	return m, nil
}
