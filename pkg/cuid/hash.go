package cuid

import (
	"golang.org/x/crypto/sha3"

	"github.com/getmockd/cuid2/pkg/base36"
)

// HashFunc returns a digest of data. It must be deterministic.
type HashFunc func(data []byte) []byte

// SHA3 is the default HashFunc: SHA3-256.
func SHA3(data []byte) []byte {
	sum := sha3.Sum256(data)
	return sum[:]
}

// hashString hashes input and returns the digest in base 36 without its
// leading digit, which is biased toward small values.
func hashString(hash HashFunc, input string) string {
	encoded := base36.Encode(hash([]byte(input)))
	return encoded[1:]
}
