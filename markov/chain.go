package markov

import "math/rand"

// ChainConfig configures a Chain's random initial state and step behavior.
type ChainConfig struct {
	N, K        int
	Seed        int64
	Length      int
	ScoreFns    map[string]ScoreFunc
	Proposal    Proposal // defaults to SingleFlipProposal if nil
	Accept      AcceptFunc
	Constraints []ConstraintFunc
}

// Chain is a sequential, single pseudo-random-stream Metropolis stepper.
// Unlike the Python source's StopIteration-based iterator, a bounded Go
// iterator is modeled as an explicit Step/Done pair rather than retrofit
// onto an iter.Seq, since chain stepping is inherently stateful and
// side-effecting.
type Chain struct {
	rng         *rand.Rand
	proposal    Proposal
	accept      AcceptFunc
	constraints []ConstraintFunc
	length      int
	step        int
	state       State
}

// NewChain builds a chain starting from a uniformly random labeling.
func NewChain(cfg ChainConfig) *Chain {
	rng := rand.New(rand.NewSource(cfg.Seed))
	state := NewRandomState(rng, cfg.N, cfg.K, cfg.ScoreFns)

	proposal := cfg.Proposal
	if proposal == nil {
		proposal = SingleFlipProposal
	}

	return &Chain{
		rng:         rng,
		proposal:    proposal,
		accept:      cfg.Accept,
		constraints: cfg.Constraints,
		length:      cfg.Length,
		state:       state,
	}
}

// Done reports whether the chain has taken its configured number of steps.
func (c *Chain) Done() bool { return c.step >= c.length }

// State returns the chain's current state without advancing it.
func (c *Chain) State() State { return c.state }

// Step draws a proposal from the current state, computes the final
// acceptance probability (the base acceptance times every soft constraint
// evaluated on the proposed state), and moves or stays accordingly. It
// always returns the state the chain held before this step, never the
// proposed one, so callers observe a clean step-by-step trajectory.
func (c *Chain) Step() State {
	if c.Done() {
		return c.state
	}

	last := c.state
	proposed := c.proposal(c.rng, c.state)

	acceptance := c.accept(c.state, proposed)
	for _, constraint := range c.constraints {
		acceptance *= constraint(proposed)
	}

	if c.rng.Float64() < acceptance {
		c.state = proposed
	}
	c.step++

	return last
}

// Run steps the chain to completion and returns its final state.
func (c *Chain) Run() State {
	for !c.Done() {
		c.Step()
	}

	return c.state
}
