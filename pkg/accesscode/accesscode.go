package accesscode

import (
	"crypto/rand"
	"strings"
)

// Alphabet is the full set of characters an access code may contain.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate returns a random code of length n drawn from Alphabet.
func Generate(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}

	out := make([]byte, n)
	for i, b := range buf {
		out[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(out)
}

// Canonicalize normalizes a user-supplied code for comparison.
// Every call site that matches codes must go through this.
func Canonicalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
