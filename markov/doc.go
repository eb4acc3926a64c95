// Package markov implements the discrete-state Metropolis chain that
// refines a clustering of submissions under composable score, soft
// constraint, and acceptance functions.
//
// ChainState is modeled as a pure, immutable value: its constructor
// recomputes every registered score and stores them in final fields, never
// mutating a frozen value after the fact, so no two steps of the chain can
// alias the same mutable state.
//
// Glossary:
//
//	β (beta)        - Metropolis pickiness parameter; larger β rejects more worsening moves.
//	Soft constraint - a bounded multiplicative factor applied to acceptance probability.
package markov
