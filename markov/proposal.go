package markov

import "math/rand"

// Proposal draws a candidate next state from the current one using rng.
// All proposals must be symmetric (forward and reverse probabilities
// equal) for Accept1D/AcceptND to be correct.
type Proposal func(rng *rand.Rand, current State) State

// SingleFlipProposal is the default proposal: it picks one submission
// index uniformly at random and one different label uniformly at random,
// and returns the flipped state. With a single cluster (K=1) there is no
// other label to propose, so it returns current unchanged.
func SingleFlipProposal(rng *rand.Rand, current State) State {
	k := len(current.Partitions)
	if k <= 1 {
		return current
	}

	idx := rng.Intn(len(current.Assignment))
	currentLabel := current.Assignment[idx]
	nextLabel := rng.Intn(k)
	for nextLabel == currentLabel {
		nextLabel = rng.Intn(k)
	}

	return current.Flip(map[int]int{idx: nextLabel})
}
