package hibp

import "testing"

// Trimmed range response in the api.pwnedpasswords.com wire format.
const rangeBody = "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n" +
	"00D4F6E8FA6EECAD2A3AA415EEC418D38EC:2\r\n" +
	"1E4C9B93F3F0682250B6CF8331B7EE68FD8:3861493\r\n" +
	"011053FD0102E94D6AE2F8B83D76FAF94F6:1\r\n"

func TestCountInRange(t *testing.T) {
	cases := []struct {
		suffix string
		want   int
	}{
		// SHA1("password") minus the 5-character prefix
		{"1E4C9B93F3F0682250B6CF8331B7EE68FD8", 3861493},
		{"0018A45C4D1DEF81644B54AB7F969B88D65", 3},
		{"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF", 0},
	}

	for _, tc := range cases {
		got, err := countInRange(rangeBody, tc.suffix)
		if err != nil {
			t.Errorf("Should not fail counting: %s", err)
		}
		if got != tc.want {
			t.Errorf("countInRange(%s): %d, want %d", tc.suffix, got, tc.want)
		}
	}
}

func TestCountInRangeMalformed(t *testing.T) {
	if _, err := countInRange("ABCDEF:not-a-number\r\n", "ABCDEF"); err == nil {
		t.Errorf("Malformed counts should fail")
	}
}

func TestNewClient(t *testing.T) {
	client, err := NewClient()
	if err != nil {
		t.Fatalf("Should not fail building a client: %s", err)
	}
	if client.http == nil || client.cache == nil {
		t.Errorf("Client should have an http client and a cache")
	}
}
