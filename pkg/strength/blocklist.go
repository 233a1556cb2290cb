package strength

import (
	"strings"

	"pwd-strength/pkg/wordlist"
)

// MatchBlocklist checks a password against a known-weak wordlist. The match
// is case-insensitive and exact; if that misses, the password with trailing
// digits stripped is tried as well, catching the common "password123"
// pattern. Variant records which form hit.
//
// A nil or empty set never matches. Pure function, no I/O; loading the list
// is pkg/wordlist's job.
func MatchBlocklist(password string, set wordlist.Set) BlocklistResult {
	if len(set) == 0 {
		return BlocklistResult{}
	}

	lower := strings.ToLower(password)
	if set.Contains(lower) {
		return BlocklistResult{Matched: true, Variant: lower}
	}

	stripped := strings.TrimRight(lower, "0123456789")
	if stripped != lower && stripped != "" && set.Contains(stripped) {
		return BlocklistResult{Matched: true, Variant: stripped}
	}

	return BlocklistResult{}
}
