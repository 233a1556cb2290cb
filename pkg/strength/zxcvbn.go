package strength

import "github.com/nbutton23/zxcvbn-go"

// AdvancedScorer is an optional pattern-aware scorer producing a 0-4 score.
// The second return value is false when the scorer could not produce one; the
// combiner then falls back to the structural score alone.
type AdvancedScorer interface {
	Score(password string) (int, bool)
}

// ZxcvbnScorer scores passwords with the zxcvbn heuristic, which recognises
// dictionary words, keyboard walks, dates, and l33t substitutions that the
// structural metric is blind to.
type ZxcvbnScorer struct{}

func (ZxcvbnScorer) Score(password string) (int, bool) {
	result := zxcvbn.PasswordStrength(password, nil)
	if result.Score < 0 || result.Score > 4 {
		return 0, false
	}
	return result.Score, true
}
