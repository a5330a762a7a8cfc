package trackcode

import "testing"

func TestGenerateFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if !Pattern.MatchString(code) {
			t.Fatalf("Generate() = %q, does not match %s", code, Pattern)
		}
	}
}

func TestGenerateCollisionRate(t *testing.T) {
	// 62^8 possible codes; over 100k generations even a single collision
	// is overwhelmingly unlikely. Allow a tiny margin so the test is not
	// flaky in theory.
	const n = 100_000

	seen := make(map[string]struct{}, n)
	collisions := 0
	for i := 0; i < n; i++ {
		code, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if _, dup := seen[code]; dup {
			collisions++
		}
		seen[code] = struct{}{}
	}

	if collisions > 1 {
		t.Fatalf("got %d collisions across %d generations", collisions, n)
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"APT-Ab3dEf9Z", true},
		{"APT-00000000", true},
		{"APT-short", false},
		{"APT-toolong123", false},
		{"apt-Ab3dEf9Z", false},
		{"APT-Ab3dEf9!", false},
		{"Ab3dEf9Z", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := IsValid(tc.code); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
