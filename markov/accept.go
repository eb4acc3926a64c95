package markov

import "math"

// AcceptFunc computes the base acceptance probability for moving from
// current to proposed, before soft constraints are applied.
type AcceptFunc func(current, proposed State) float64

// ConstraintFunc is a soft constraint: a bounded [0, 1] multiplicative
// factor applied to the base acceptance probability, evaluated on the
// proposed state.
type ConstraintFunc func(State) float64

// ScoreSpec names one score and its improvement direction for AcceptND:
// Flipped false means the score is minimized, true means maximized.
type ScoreSpec struct {
	Name    string
	Flipped bool
}

// Accept1D builds an acceptance function from a single named score.
//
// The improvement ratio m is current.score/proposed.score when flipped is
// false (minimization), or proposed.score/current.score when flipped is
// true (maximization). If m >= 1 the move always accepts; otherwise it
// accepts with probability exp(-beta*m) when flipped is false, and
// exp(-beta/m) when flipped is true.
//
// The flipped branch's exp(-beta/m) (division, not multiplication) is
// intentionally preserved exactly as observed in the source this was
// ported from rather than normalized to match the non-flipped branch; see
// DESIGN.md's Open Question record for why this asymmetry is kept as-is.
func Accept1D(score string, beta float64, flipped bool) AcceptFunc {
	return func(current, proposed State) float64 {
		var m float64
		if flipped {
			m = proposed.Scores[score] / current.Scores[score]
		} else {
			m = current.Scores[score] / proposed.Scores[score]
		}
		if m >= 1 {
			return 1
		}
		if flipped {
			return math.Exp(-beta / m)
		}

		return math.Exp(-beta * m)
	}
}

// AcceptND builds an acceptance function from a list of named scores.
// Each score's improvement ratio is computed by the same rule as Accept1D;
// the smallest ratio across the list is taken. If that minimum is >= 1
// (every score improved) the move always accepts; otherwise it accepts
// with probability exp(-beta/min_ratio).
func AcceptND(scores []ScoreSpec, beta float64) AcceptFunc {
	return func(current, proposed State) float64 {
		minRatio := math.Inf(1)
		for _, spec := range scores {
			var m float64
			if spec.Flipped {
				m = proposed.Scores[spec.Name] / current.Scores[spec.Name]
			} else {
				m = current.Scores[spec.Name] / proposed.Scores[spec.Name]
			}
			if m < minRatio {
				minRatio = m
			}
		}
		if minRatio >= 1 {
			return 1
		}

		return math.Exp(-beta / minRatio)
	}
}

// ClusterSizeConstraint builds the built-in cluster-size soft constraint:
// it returns 1 when every cluster's size is at least targetSize, else the
// smallest cluster's size divided by targetSize.
func ClusterSizeConstraint(targetSize float64) ConstraintFunc {
	return func(s State) float64 {
		minSize := math.MaxInt
		for _, indices := range s.Partitions {
			if len(indices) < minSize {
				minSize = len(indices)
			}
		}
		if float64(minSize) >= targetSize {
			return 1
		}

		return float64(minSize) / targetSize
	}
}
