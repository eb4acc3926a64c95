package markov_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mggg/coi-analysis/dissimilarity"
	"github.com/mggg/coi-analysis/markov"
)

func partitionInvariant(t *testing.T, s markov.State, n int) {
	t.Helper()

	seen := make(map[int]bool, n)
	for label, indices := range s.Partitions {
		for idx := range indices {
			require.Equal(t, label, s.Assignment[idx])
			require.False(t, seen[idx], "index %d appeared in more than one partition", idx)
			seen[idx] = true
		}
	}
	require.Len(t, seen, n)
}

func identityMatrix(i, j int) float64 {
	if i == j {
		return 0
	}

	return 1
}

func TestRandomStatePartitionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	scoreFns := map[string]markov.ScoreFunc{"geo": markov.IntraclusterScore(identityMatrix)}
	s := markov.NewRandomState(rng, 8, 3, scoreFns)
	partitionInvariant(t, s, 8)
}

func TestFlipPreservesPartitionInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	scoreFns := map[string]markov.ScoreFunc{"geo": markov.IntraclusterScore(identityMatrix)}
	s := markov.NewRandomState(rng, 6, 2, scoreFns)

	idx := 0
	oldLabel := s.Assignment[idx]
	newLabel := 1 - oldLabel

	flipped := s.Flip(map[int]int{idx: newLabel})
	partitionInvariant(t, flipped, 6)
	require.Equal(t, newLabel, flipped.Assignment[idx])

	// original state is untouched
	require.Equal(t, oldLabel, s.Assignment[idx])
}

func TestAccept1DAlwaysAcceptsImprovingMove(t *testing.T) {
	accept := markov.Accept1D("geo", 10, false)
	current := fakeState(t, map[string]float64{"geo": 10})
	proposed := fakeState(t, map[string]float64{"geo": 5})

	require.Equal(t, 1.0, accept(current, proposed))
}

func TestAccept1DFlippedAsymmetryPreserved(t *testing.T) {
	// flipped=true uses exp(-beta/m); flipped=false uses exp(-beta*m).
	// A worsening move with the same m should differ between branches.
	current := fakeState(t, map[string]float64{"s": 10})
	proposed := fakeState(t, map[string]float64{"s": 5})

	nonFlipped := markov.Accept1D("s", 2, false)(current, proposed) // m = current/proposed = 2 >= 1 -> 1
	require.Equal(t, 1.0, nonFlipped)

	flipped := markov.Accept1D("s", 2, true)(current, proposed) // m = proposed/current = 0.5 < 1
	require.Less(t, flipped, 1.0)
	require.Greater(t, flipped, 0.0)
	require.InDelta(t, math.Exp(-2/0.5), flipped, 1e-12)

	// Same m = 0.5 on the minimizing branch: current=5, proposed=10.
	nonFlippedWorse := markov.Accept1D("s", 2, false)(proposed, current)
	require.InDelta(t, math.Exp(-2*0.5), nonFlippedWorse, 1e-12)
}

func TestClusterSizeConstraint(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	scoreFns := map[string]markov.ScoreFunc{}
	s := markov.NewRandomState(rng, 1, 2, scoreFns)
	// one doc, two clusters: min cluster size is 0
	constraint := markov.ClusterSizeConstraint(1)
	require.Less(t, constraint(s), 1.0)
}

func TestChainSeededReproducibility(t *testing.T) {
	scoreFns := func() map[string]markov.ScoreFunc {
		return map[string]markov.ScoreFunc{"geo": markov.IntraclusterScore(identityMatrix)}
	}

	run := func() markov.State {
		chain := markov.NewChain(markov.ChainConfig{
			N: 4, K: 2, Seed: 42, Length: 1000,
			ScoreFns:    scoreFns(),
			Accept:      markov.Accept1D("geo", 10, false),
			Constraints: nil,
		})

		return chain.Run()
	}

	a := run()
	b := run()
	require.Equal(t, a.Assignment, b.Assignment)
}

func TestSingleFlipProposalRejectedWhenSingleCluster(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	scoreFns := map[string]markov.ScoreFunc{"geo": markov.IntraclusterScore(identityMatrix)}
	s := markov.NewRandomState(rng, 4, 1, scoreFns)

	proposed := markov.SingleFlipProposal(rng, s)
	require.Equal(t, s.Assignment, proposed.Assignment)
}

// submission-level (N×N) dissimilarity matrices for the convenience-
// constructor tests below; distinct from a graph's V×V distance oracle to
// make sure GeoChain/GeoSemanticChain size their chain off N, not V.
func fakeDissimilarity(n int) *dissimilarity.Matrix {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				data[i*n+j] = float64(i + j + 1)
			}
		}
	}

	return dissimilarity.FromFlat(n, data)
}

func TestGeoChainSizesByDissimilarityDimension(t *testing.T) {
	geo := fakeDissimilarity(5)

	chain := markov.GeoChain(geo, 1, 2, 10, 7)
	state := chain.Run()
	require.Len(t, state.Assignment, 5)
}

func TestSemanticChainSizesByDissimilarityDimension(t *testing.T) {
	sim := fakeDissimilarity(6)

	chain := markov.SemanticChain(sim, 1, 3, 10, 7)
	state := chain.Run()
	require.Len(t, state.Assignment, 6)
}

func TestGeoSemanticChainSizesByDissimilarityDimension(t *testing.T) {
	geo := fakeDissimilarity(4)
	sim := fakeDissimilarity(4)

	chain := markov.GeoSemanticChain(geo, sim, 1, 2, 10, 7)
	state := chain.Run()
	require.Len(t, state.Assignment, 4)
}

// fakeState builds a State with pre-set scores for acceptance-function
// tests that don't need a full partition.
func fakeState(t *testing.T, scores map[string]float64) markov.State {
	t.Helper()
	rng := rand.New(rand.NewSource(99))
	s := markov.NewRandomState(rng, 2, 2, nil)
	for k, v := range scores {
		s.Scores[k] = v
	}

	return s
}
