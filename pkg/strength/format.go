package strength

import (
	"fmt"
	"io"
	"strings"
)

// Format renders a report as plain text lines: length, present classes,
// entropy to two decimals, score and label, blocklist and breach verdicts,
// then the advice list in order. This is the textual contract the CLI prints.
func Format(w io.Writer, r StrengthReport) error {
	var classes []string
	if r.Profile.HasUpper {
		classes = append(classes, "upper")
	}
	if r.Profile.HasLower {
		classes = append(classes, "lower")
	}
	if r.Profile.HasDigit {
		classes = append(classes, "digit")
	}
	if r.Profile.HasSpecial {
		classes = append(classes, "special")
	}
	present := "none"
	if len(classes) > 0 {
		present = strings.Join(classes, ", ")
	}

	var b strings.Builder
	b.WriteString("=== Password analysis ===\n")
	fmt.Fprintf(&b, "Length: %d\n", r.Profile.Length)
	fmt.Fprintf(&b, "Character classes: %s\n", present)
	fmt.Fprintf(&b, "Entropy (bits): %.2f\n", r.EntropyBits)
	fmt.Fprintf(&b, "Score: %d -> %s\n", r.Score, r.Label)
	if r.AdvancedScore != nil {
		fmt.Fprintf(&b, "zxcvbn score: %d (0-4)\n", *r.AdvancedScore)
	}

	if r.Blocklist.Matched {
		fmt.Fprintf(&b, "Blocklist: matched %q\n", r.Blocklist.Variant)
	} else {
		b.WriteString("Blocklist: no match\n")
	}

	switch {
	case !r.Breach.Checked:
		b.WriteString("Breach check: skipped\n")
	case r.Breach.Found:
		fmt.Fprintf(&b, "Breach check: found %d times in known breaches\n", r.Breach.Count)
	default:
		b.WriteString("Breach check: not found\n")
	}

	if len(r.Advice) > 0 {
		b.WriteString("Advice:\n")
		for _, a := range r.Advice {
			fmt.Fprintf(&b, " - %s\n", a)
		}
	} else {
		b.WriteString("Good job! This password looks strong.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
