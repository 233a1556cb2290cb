package strength

import "unicode"

// NewProfile scans a password and flags each character class that occurs at
// least once. Whitespace counts toward Length but toward no class flag, so a
// padded password does not inflate the apparent alphabet. Total over all
// strings, including empty.
func NewProfile(password string) Profile {
	var p Profile
	for _, r := range password {
		p.Length++
		switch {
		case unicode.IsUpper(r):
			p.HasUpper = true
		case unicode.IsLower(r):
			p.HasLower = true
		case unicode.IsDigit(r):
			p.HasDigit = true
		case unicode.IsSpace(r):
			// length only
		default:
			p.HasSpecial = true
		}
	}
	return p
}
