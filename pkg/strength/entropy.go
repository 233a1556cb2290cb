package strength

import "math"

// Assumed cardinality of each character class. The special set size matches
// the printable ASCII punctuation count.
const (
	upperSetSize   = 26
	lowerSetSize   = 26
	digitSetSize   = 10
	specialSetSize = 32
)

// EstimateEntropy returns an approximate bit-strength for a password with the
// given profile: length * log2(A), where A is the combined size of the
// character classes actually observed.
//
// This is an upper bound, not measured entropy. It assumes every character was
// drawn uniformly from the union of the observed classes, so it overestimates
// for predictable multi-class strings like "Password1!". Known-common inputs
// are caught by the blocklist and breach signals instead.
func EstimateEntropy(p Profile) float64 {
	alphabet := 0
	if p.HasUpper {
		alphabet += upperSetSize
	}
	if p.HasLower {
		alphabet += lowerSetSize
	}
	if p.HasDigit {
		alphabet += digitSetSize
	}
	if p.HasSpecial {
		alphabet += specialSetSize
	}

	// log2(0) and log2(1) are taken as 0, covering the empty password.
	if alphabet <= 1 {
		return 0
	}

	return float64(p.Length) * math.Log2(float64(alphabet))
}
