package markov

// ValueMatrix reads the pairwise value between indices i and j of a
// symmetric N×N matrix (either the graph-distance dissimilarity matrix, to
// be minimized, or a caller-supplied semantic-similarity matrix, to be
// maximized).
type ValueMatrix func(i, j int) float64

// IntraclusterScore builds the built-in intracluster score: the sum over
// all ordered intra-cluster pairs (including self-pairs) of m(i, j),
// divided by the number of such pairs (or 1 if there are none).
func IntraclusterScore(m ValueMatrix) ScoreFunc {
	return func(s State) float64 {
		sum := 0.0
		pairs := 0
		for _, indices := range s.Partitions {
			for i := range indices {
				for j := range indices {
					sum += m(i, j)
					pairs++
				}
			}
		}
		if pairs == 0 {
			pairs = 1
		}

		return sum / float64(pairs)
	}
}
