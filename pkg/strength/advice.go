package strength

import "fmt"

// advise builds the remediation list. Predicates run in a fixed order and
// each contributes at most one line, so the output is deterministic and free
// of duplicates: override warnings first, then length, class mix, entropy,
// and finally the advanced scorer's disagreement. structural is the score
// before blending and overrides.
//
// Whenever the final score is below Very strong at least one predicate fires:
// a structural score under 4 implies a short length, a missing class, or
// entropy at or below the very-strong threshold, and any other downgrade
// comes from an override or the advanced scorer.
func (c *Combiner) advise(profile Profile, entropyBits float64, blocked BlocklistResult, breach BreachResult, advanced *int, structural int) []string {
	var advice []string

	if blocked.Matched {
		advice = append(advice, fmt.Sprintf("this password is on the blocklist (matched %q); pick something unique", blocked.Variant))
	}
	if breach.Checked && breach.Found {
		advice = append(advice, fmt.Sprintf("this password appears in known data breaches (%d times); never use it", breach.Count))
	}
	if profile.Length < c.cfg.MinLength {
		advice = append(advice, fmt.Sprintf("use at least %d characters", c.cfg.MinLength))
	}
	if profile.Classes() < 4 {
		advice = append(advice, "mix uppercase, lowercase, digits, and special characters")
	}
	if entropyBits <= c.cfg.VeryStrongBits {
		advice = append(advice, "increase entropy (longer / more unpredictable)")
	}
	if advanced != nil && *advanced < structural {
		advice = append(advice, "avoid dictionary words, dates, and predictable patterns")
	}

	return advice
}
