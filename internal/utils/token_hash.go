package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken generates a SHA256 hash of an opaque token. Used for refresh
// tokens, invite tokens and integration keys, which are stored hashed.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareTokenHash compares a raw token with its stored SHA256 hash.
func CompareTokenHash(token string, storedHash string) bool {
	return HashToken(token) == storedHash
}
