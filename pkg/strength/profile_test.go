package strength

import "testing"

func TestNewProfile(t *testing.T) {
	cases := []struct {
		password string
		want     Profile
	}{
		{"", Profile{}},
		{"abc", Profile{HasLower: true, Length: 3}},
		{"ABC", Profile{HasUpper: true, Length: 3}},
		{"123", Profile{HasDigit: true, Length: 3}},
		{"!@#", Profile{HasSpecial: true, Length: 3}},
		{"P@ssw0rd123", Profile{HasUpper: true, HasLower: true, HasDigit: true, HasSpecial: true, Length: 11}},
		// whitespace counts toward length but sets no class flag
		{"   ", Profile{Length: 3}},
		{"a b", Profile{HasLower: true, Length: 3}},
		// length is runes, not bytes
		{"pässwörd", Profile{HasLower: true, Length: 8}},
		{"ñÑ9!", Profile{HasUpper: true, HasLower: true, HasDigit: true, HasSpecial: true, Length: 4}},
	}

	for _, tc := range cases {
		if got := NewProfile(tc.password); got != tc.want {
			t.Errorf("NewProfile(%q): %+v, want %+v", tc.password, got, tc.want)
		}
	}
}
