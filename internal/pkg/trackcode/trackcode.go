package trackcode

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

const (
	// Prefix is prepended to every tracking code
	Prefix = "APT-"

	// Length is the number of random characters after the prefix
	Length = 8

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Pattern matches a well-formed tracking code
var Pattern = regexp.MustCompile(`^APT-[A-Za-z0-9]{8}$`)

// Generate produces a new opaque tracking code (APT- + 8 random alphanumerics).
// Uniqueness against the store is NOT guaranteed here; the caller must check
// for collisions and regenerate.
func Generate() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return Prefix + string(buf), nil
}

// IsValid reports whether code is a well-formed tracking code
func IsValid(code string) bool {
	return Pattern.MatchString(code)
}
