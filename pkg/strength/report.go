// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

// Package strength is the password scoring engine. Everything in it is a pure
// function of its inputs: the caller performs any I/O (wordlist loading,
// breach lookups) up front and passes resolved values in, so a full
// evaluation never blocks and is safe to run concurrently per password.
package strength

// Profile records which character classes occur in a password. It is derived
// once per password and not mutated afterwards.
type Profile struct {
	HasUpper   bool `json:"hasUpper"`
	HasLower   bool `json:"hasLower"`
	HasDigit   bool `json:"hasDigit"`
	HasSpecial bool `json:"hasSpecial"`
	Length     int  `json:"length"`
}

// Classes is the number of distinct character classes present, 0 to 4.
func (p Profile) Classes() int {
	n := 0
	for _, set := range []bool{p.HasUpper, p.HasLower, p.HasDigit, p.HasSpecial} {
		if set {
			n++
		}
	}
	return n
}

// BlocklistResult reports a match against a known-weak wordlist. Variant is
// the form of the password that matched (as-is or with trailing digits
// stripped), empty when there was no match.
type BlocklistResult struct {
	Matched bool   `json:"matched"`
	Variant string `json:"variant,omitempty"`
}

// BreachResult carries the outcome of an external breach-corpus lookup.
// Checked is false when the lookup was skipped or failed; Found and Count
// carry no meaning in that case.
type BreachResult struct {
	Checked bool `json:"checked"`
	Found   bool `json:"found"`
	Count   int  `json:"count"`
}

// Label is the human-readable strength verdict, one per score value.
type Label string

const (
	VeryWeak   Label = "Very weak"
	Weak       Label = "Weak"
	Fair       Label = "Fair"
	Strong     Label = "Strong"
	VeryStrong Label = "Very strong"
)

var labels = [5]Label{VeryWeak, Weak, Fair, Strong, VeryStrong}

// LabelFor maps a 0-4 score to its verdict. Out-of-range scores are clamped.
func LabelFor(score int) Label {
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}
	return labels[score]
}

// StrengthReport is the result of one password evaluation. It is built once
// by Combiner.Combine and never mutated.
type StrengthReport struct {
	Profile       Profile         `json:"profile"`
	EntropyBits   float64         `json:"entropyBits"`
	Score         int             `json:"score"`
	Label         Label           `json:"label"`
	Blocklist     BlocklistResult `json:"blocklist"`
	Breach        BreachResult    `json:"breach"`
	AdvancedScore *int            `json:"advancedScore,omitempty"`
	Advice        []string        `json:"advice"`
}
