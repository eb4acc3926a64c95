package markov

import (
	"github.com/mggg/coi-analysis/dissimilarity"
)

// GeoChain builds a chain that minimizes intracluster geographic distance,
// mirroring the original source's geo_chain convenience constructor. geo is
// a submission-level geographic dissimilarity matrix (e.g. the Hausdorff
// output), N×N over submissions — not the graph's V×V unit distance oracle.
func GeoChain(geo *dissimilarity.Matrix, beta float64, k, length int, seed int64) *Chain {
	n := geo.Dim()
	vm := func(i, j int) float64 {
		v, _ := geo.At(i, j)

		return v
	}
	scoreFns := map[string]ScoreFunc{"geo": IntraclusterScore(vm)}

	return NewChain(ChainConfig{
		N:           n,
		K:           k,
		Seed:        seed,
		Length:      length,
		ScoreFns:    scoreFns,
		Accept:      Accept1D("geo", beta, false),
		Constraints: []ConstraintFunc{ClusterSizeConstraint(float64(n) / float64(k))},
	})
}

// SemanticChain builds a chain that maximizes intracluster semantic
// similarity, mirroring the original source's semantic_chain convenience
// constructor.
func SemanticChain(sim *dissimilarity.Matrix, beta float64, k, length int, seed int64) *Chain {
	n := sim.Dim()
	vm := func(i, j int) float64 {
		v, _ := sim.At(i, j)

		return v
	}
	scoreFns := map[string]ScoreFunc{"semantic": IntraclusterScore(vm)}

	return NewChain(ChainConfig{
		N:           n,
		K:           k,
		Seed:        seed,
		Length:      length,
		ScoreFns:    scoreFns,
		Accept:      Accept1D("semantic", beta, true),
		Constraints: []ConstraintFunc{ClusterSizeConstraint(float64(n) / float64(k))},
	})
}

// GeoSemanticChain builds a chain that simultaneously minimizes
// intracluster geographic distance and maximizes intracluster semantic
// similarity, mirroring the original source's geo_semantic_chain
// convenience constructor. geo and sim must share the same dimension.
func GeoSemanticChain(geo, sim *dissimilarity.Matrix, beta float64, k, length int, seed int64) *Chain {
	n := geo.Dim()
	vmGeo := func(i, j int) float64 {
		v, _ := geo.At(i, j)

		return v
	}
	vmSem := func(i, j int) float64 {
		v, _ := sim.At(i, j)

		return v
	}
	scoreFns := map[string]ScoreFunc{
		"geo":      IntraclusterScore(vmGeo),
		"semantic": IntraclusterScore(vmSem),
	}

	return NewChain(ChainConfig{
		N:        n,
		K:        k,
		Seed:     seed,
		Length:   length,
		ScoreFns: scoreFns,
		Accept: AcceptND([]ScoreSpec{
			{Name: "geo", Flipped: false},
			{Name: "semantic", Flipped: true},
		}, beta),
		Constraints: []ConstraintFunc{ClusterSizeConstraint(float64(n) / float64(k))},
	})
}
