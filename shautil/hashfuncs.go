package shautil

import (
	"github.com/goastler/sha-256/sha256"
)

// Sum256Bytes returns sha256(data) as a byte slice.
func Sum256Bytes(data []byte) []byte {
	h := sha256.Sum256(data)
	return h[:]
}

// DoubleSum256 returns sha256(sha256(data)).
func DoubleSum256(data []byte) []byte {
	h1 := sha256.Sum256(data)
	h2 := sha256.Sum256(h1[:])
	return h2[:]
}
