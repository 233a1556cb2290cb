package strength

import (
	"strings"
	"testing"

	"pwd-strength/pkg/wordlist"
)

// stubScorer returns a fixed advanced score.
type stubScorer struct {
	score int
	ok    bool
}

func (s stubScorer) Score(string) (int, bool) {
	return s.score, s.ok
}

func mustCombiner(t *testing.T, scorer AdvancedScorer) *Combiner {
	t.Helper()
	c, err := NewCombiner(DefaultConfig(), scorer)
	if err != nil {
		t.Fatalf("Should not fail building a combiner: %s", err)
	}
	return c
}

func TestNewCombinerRejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero weak threshold", Config{WeakBits: 0, FairBits: 28, StrongBits: 40, VeryStrongBits: 60, MinLength: 12}},
		{"non-monotonic thresholds", Config{WeakBits: 30, FairBits: 28, StrongBits: 40, VeryStrongBits: 60, MinLength: 12}},
		{"equal thresholds", Config{WeakBits: 18, FairBits: 28, StrongBits: 40, VeryStrongBits: 40, MinLength: 12}},
		{"zero min length", Config{WeakBits: 18, FairBits: 28, StrongBits: 40, VeryStrongBits: 60, MinLength: 0}},
	}

	for _, tc := range cases {
		if _, err := NewCombiner(tc.cfg, nil); err == nil {
			t.Errorf("%s: NewCombiner should fail", tc.name)
		}
	}
}

func TestLabelTable(t *testing.T) {
	want := map[int]Label{0: VeryWeak, 1: Weak, 2: Fair, 3: Strong, 4: VeryStrong}
	for score, label := range want {
		if got := LabelFor(score); got != label {
			t.Errorf("LabelFor(%d) = %s, want %s", score, got, label)
		}
	}
}

func TestEvaluateWordlistScenario(t *testing.T) {
	// "password" against a wordlist containing it must come out Weak at best,
	// with the blocklist named in the advice.
	c := mustCombiner(t, nil)
	report := c.Evaluate("password", wordlist.NewSet("password"), BreachResult{})

	if !report.Blocklist.Matched {
		t.Errorf("Blocklist should match")
	}
	if report.Score > 1 {
		t.Errorf("Score should be forced to at most 1, got %d", report.Score)
	}
	if report.Label != Weak {
		t.Errorf("Label should be %s, got %s", Weak, report.Label)
	}
	if len(report.Advice) == 0 || !strings.Contains(report.Advice[0], "blocklist") {
		t.Errorf("First advice line should name the blocklist, got %v", report.Advice)
	}
}

func TestEvaluateStructuralScenario(t *testing.T) {
	// "P@ssw0rd123": all four classes, length 11, about 72.2 bits. The length
	// gate keeps it out of Very strong.
	c := mustCombiner(t, nil)
	report := c.Evaluate("P@ssw0rd123", nil, BreachResult{})

	if got := report.Profile.Classes(); got != 4 {
		t.Errorf("All four classes should be present, got %d", got)
	}
	if report.Profile.Length != 11 {
		t.Errorf("Length should be 11, got %d", report.Profile.Length)
	}
	if report.EntropyBits < 72 || report.EntropyBits > 73 {
		t.Errorf("Entropy should be about 72.2 bits, got %f", report.EntropyBits)
	}
	if report.Score != 3 || report.Label != Strong {
		t.Errorf("Expected 3/%s, got %d/%s", Strong, report.Score, report.Label)
	}
}

func TestEvaluateVeryStrong(t *testing.T) {
	c := mustCombiner(t, nil)
	report := c.Evaluate("Tr0ub4dor&3-Staple!X", nil, BreachResult{})

	if report.Score != 4 || report.Label != VeryStrong {
		t.Errorf("Expected 4/%s, got %d/%s", VeryStrong, report.Score, report.Label)
	}
	if len(report.Advice) != 0 {
		t.Errorf("A Very strong verdict should carry no advice, got %v", report.Advice)
	}
}

func TestEvaluateEmptyPassword(t *testing.T) {
	c := mustCombiner(t, nil)
	report := c.Evaluate("", nil, BreachResult{})

	if report.Profile.Length != 0 || report.Profile.Classes() != 0 {
		t.Errorf("Empty password should have an empty profile, got %+v", report.Profile)
	}
	if report.EntropyBits != 0 {
		t.Errorf("Empty password should have zero entropy, got %f", report.EntropyBits)
	}
	if report.Score != 0 || report.Label != VeryWeak {
		t.Errorf("Expected 0/%s, got %d/%s", VeryWeak, report.Score, report.Label)
	}
	hasLengthAdvice := false
	for _, a := range report.Advice {
		if strings.Contains(a, "at least 12 characters") {
			hasLengthAdvice = true
		}
	}
	if !hasLengthAdvice {
		t.Errorf("Advice should recommend a minimum length, got %v", report.Advice)
	}
}

func TestEvaluateBreachedScenario(t *testing.T) {
	// Structurally strong but present in the breach corpus: the override wins.
	c := mustCombiner(t, nil)
	breach := BreachResult{Checked: true, Found: true, Count: 1234}
	report := c.Evaluate("Tr0ub4dor&3-Staple!X", nil, breach)

	if report.Score > 1 {
		t.Errorf("Breached password should score at most 1, got %d", report.Score)
	}
	if len(report.Advice) == 0 || !strings.Contains(report.Advice[0], "breaches") {
		t.Errorf("First advice line should be the breach warning, got %v", report.Advice)
	}
}

func TestEvaluateBreachUncheckedIsNeutral(t *testing.T) {
	c := mustCombiner(t, nil)
	// Found=true carries no meaning without Checked.
	report := c.Evaluate("Tr0ub4dor&3-Staple!X", nil, BreachResult{Checked: false, Found: true})

	if report.Score != 4 {
		t.Errorf("An unchecked breach result should not affect the score, got %d", report.Score)
	}
}

func TestAdvancedScoreBlendsConservatively(t *testing.T) {
	strong := "Tr0ub4dor&3-Staple!X"

	cases := []struct {
		name   string
		scorer AdvancedScorer
		want   int
	}{
		{"lower advanced score wins", stubScorer{score: 2, ok: true}, 2},
		{"higher advanced score loses", stubScorer{score: 4, ok: true}, 4},
		{"failed scorer is ignored", stubScorer{score: 0, ok: false}, 4},
		{"nil scorer is ignored", nil, 4},
	}

	for _, tc := range cases {
		c := mustCombiner(t, tc.scorer)
		report := c.Evaluate(strong, nil, BreachResult{})
		if report.Score != tc.want {
			t.Errorf("%s: score %d, want %d", tc.name, report.Score, tc.want)
		}
	}
}

func TestAdviceNeverEmptyBelowVeryStrong(t *testing.T) {
	c := mustCombiner(t, stubScorer{score: 2, ok: true})

	passwords := []string{"", "a", "password", "P@ssw0rd123", "Tr0ub4dor&3-Staple!X", "correct horse battery staple"}
	for _, pwd := range passwords {
		report := c.Evaluate(pwd, wordlist.NewSet("password"), BreachResult{})
		if report.Score < 4 && len(report.Advice) == 0 {
			t.Errorf("Advice should not be empty for %q at score %d", pwd, report.Score)
		}
	}
}

func TestAdviceHasNoDuplicates(t *testing.T) {
	c := mustCombiner(t, stubScorer{score: 0, ok: true})
	report := c.Evaluate("password", wordlist.NewSet("password"), BreachResult{Checked: true, Found: true, Count: 9})

	seen := make(map[string]bool)
	for _, a := range report.Advice {
		if seen[a] {
			t.Errorf("Duplicate advice line: %q", a)
		}
		seen[a] = true
	}
}

func TestZxcvbnScorer(t *testing.T) {
	score, ok := ZxcvbnScorer{}.Score("password")
	if !ok {
		t.Errorf("Should not fail scoring")
	}
	if score < 0 || score > 4 {
		t.Errorf("Score should be within [0,4], got %d", score)
	}
	if score > 1 {
		t.Errorf("zxcvbn should consider \"password\" weak, got %d", score)
	}
}
