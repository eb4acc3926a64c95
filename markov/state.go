package markov

import "math/rand"

// ScoreFunc maps a State to a non-negative real score.
type ScoreFunc func(State) float64

// State is one immutable value of the clustering chain: a partition of
// {0, ..., N-1} into labeled parts, kept as both label->indices and
// index->label views, plus every registered score recomputed at
// construction time. It is never mutated after construction; Flip returns
// a new State.
type State struct {
	Partitions map[int]map[int]struct{} // label -> set of indices
	Assignment []int                    // index -> label
	Scores     map[string]float64

	scoreFns map[string]ScoreFunc
}

func newState(partitions map[int]map[int]struct{}, assignment []int, scoreFns map[string]ScoreFunc) State {
	s := State{
		Partitions: partitions,
		Assignment: assignment,
		scoreFns:   scoreFns,
		Scores:     make(map[string]float64, len(scoreFns)),
	}
	for name, fn := range scoreFns {
		s.Scores[name] = fn(s)
	}

	return s
}

// NewRandomState generates a uniformly random partition of n indices into
// k labels.
func NewRandomState(rng *rand.Rand, n, k int, scoreFns map[string]ScoreFunc) State {
	assignment := make([]int, n)
	partitions := make(map[int]map[int]struct{}, k)
	for l := 0; l < k; l++ {
		partitions[l] = make(map[int]struct{})
	}
	for i := 0; i < n; i++ {
		label := rng.Intn(k)
		assignment[i] = label
		partitions[label][i] = struct{}{}
	}

	return newState(partitions, assignment, scoreFns)
}

// Flip returns a new State where every index named in moves is reassigned
// to the given label; the old label's set loses the index, the new
// label's set gains it, and every registered score is recomputed on the
// result.
func (s State) Flip(moves map[int]int) State {
	partitions := make(map[int]map[int]struct{}, len(s.Partitions))
	for label, indices := range s.Partitions {
		cp := make(map[int]struct{}, len(indices))
		for idx := range indices {
			cp[idx] = struct{}{}
		}
		partitions[label] = cp
	}

	assignment := make([]int, len(s.Assignment))
	copy(assignment, s.Assignment)

	for idx, newLabel := range moves {
		oldLabel := assignment[idx]
		delete(partitions[oldLabel], idx)
		partitions[newLabel][idx] = struct{}{}
		assignment[idx] = newLabel
	}

	return newState(partitions, assignment, s.scoreFns)
}
