package cuid

import (
	"io"
	"strings"
)

// CreateFingerprint builds a BigLength-character fingerprint from the values
// of identity followed by BigLength random symbols, hashed with SHA3. A nil
// identity reads the process environment.
func CreateFingerprint(random io.Reader, identity IdentitySource) (string, error) {
	return createFingerprint(random, identity, SHA3)
}

func createFingerprint(random io.Reader, identity IdentitySource, hash HashFunc) (string, error) {
	if identity == nil {
		identity = EnvironmentSource{}
	}

	// An empty identity leaves only the random suffix.
	source := strings.Join(identity.Identity(), "")

	salt, err := CreateEntropy(BigLength, random)
	if err != nil {
		return "", err
	}

	return padLeft(hashString(hash, source+salt), BigLength)[:BigLength], nil
}

// padLeft prefixes s with zero digits up to n characters.
func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}
