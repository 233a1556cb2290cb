// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package strength

import (
	"fmt"

	"pwd-strength/pkg/wordlist"
)

// Config holds the entropy thresholds, in bits, that drive the structural
// score. Thresholds must be strictly increasing.
type Config struct {
	WeakBits       float64
	FairBits       float64
	StrongBits     float64
	VeryStrongBits float64
	// MinLength is the length below which a password is advised to grow,
	// and the minimum for a Very strong verdict.
	MinLength int
}

// DefaultConfig returns the stock thresholds. They are heuristics, not values
// from a cited standard; tune them per deployment if needed.
func DefaultConfig() Config {
	return Config{
		WeakBits:       18,
		FairBits:       28,
		StrongBits:     40,
		VeryStrongBits: 60,
		MinLength:      12,
	}
}

// Combiner merges the structural profile, the entropy estimate, the blocklist
// and breach signals, and an optional advanced scorer into one report.
type Combiner struct {
	cfg    Config
	scorer AdvancedScorer
}

// NewCombiner validates the configuration once, up front. A nil scorer means
// no advanced scoring; that is a normal state, not an error. Malformed
// thresholds are a programming or deployment mistake and fail here rather
// than at evaluation time.
func NewCombiner(cfg Config, scorer AdvancedScorer) (*Combiner, error) {
	if cfg.WeakBits <= 0 {
		return nil, fmt.Errorf("strength: weak threshold must be positive, got %.2f", cfg.WeakBits)
	}
	if cfg.WeakBits >= cfg.FairBits || cfg.FairBits >= cfg.StrongBits || cfg.StrongBits >= cfg.VeryStrongBits {
		return nil, fmt.Errorf("strength: thresholds must be strictly increasing, got %.2f/%.2f/%.2f/%.2f",
			cfg.WeakBits, cfg.FairBits, cfg.StrongBits, cfg.VeryStrongBits)
	}
	if cfg.MinLength <= 0 {
		return nil, fmt.Errorf("strength: minimum length must be positive, got %d", cfg.MinLength)
	}

	return &Combiner{cfg: cfg, scorer: scorer}, nil
}

// Evaluate runs the whole pipeline for one password: profile, entropy,
// blocklist match, advanced score, then Combine. The breach result is
// resolved by the caller beforehand; pass the zero value when the check was
// skipped. Safe to call concurrently.
func (c *Combiner) Evaluate(password string, set wordlist.Set, breach BreachResult) StrengthReport {
	profile := NewProfile(password)
	entropy := EstimateEntropy(profile)
	blocked := MatchBlocklist(password, set)

	var advanced *int
	if c.scorer != nil {
		if score, ok := c.scorer.Score(password); ok {
			advanced = &score
		}
	}

	return c.Combine(profile, entropy, blocked, breach, advanced)
}

// Combine derives the final score and advice from already-computed signals.
//
// The structural score starts at the class count, drops one level below the
// fair threshold and another below the weak threshold, and reaches 4 only for
// long, four-class passwords above the very-strong threshold. An advanced
// score, when present, is blended by taking the minimum: a pattern-aware
// scorer that spotted something should not be overruled by this metric's
// optimism. The blocklist/breach override always applies last - a
// known-compromised password is never reported above Weak.
func (c *Combiner) Combine(profile Profile, entropyBits float64, blocked BlocklistResult, breach BreachResult, advanced *int) StrengthReport {
	score := profile.Classes()
	if entropyBits < c.cfg.FairBits {
		score--
	}
	if entropyBits < c.cfg.WeakBits {
		score--
	}
	if score < 0 {
		score = 0
	}

	if score > 3 {
		if profile.Length < c.cfg.MinLength || entropyBits <= c.cfg.VeryStrongBits || profile.Classes() < 4 {
			score = 3
		}
	}
	structural := score

	if advanced != nil && *advanced < score {
		score = *advanced
	}

	breached := breach.Checked && breach.Found
	if (blocked.Matched || breached) && score > 1 {
		score = 1
	}

	return StrengthReport{
		Profile:       profile,
		EntropyBits:   entropyBits,
		Score:         score,
		Label:         LabelFor(score),
		Blocklist:     blocked,
		Breach:        breach,
		AdvancedScore: advanced,
		Advice:        c.advise(profile, entropyBits, blocked, breach, advanced, structural),
	}
}
