// Package security provides credential hashing and secret detection for
// exported documents.
package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// DigestLen is the length of a hex encoded digest.
const DigestLen = sha256.Size * 2

// Digest returns the lowercase hex SHA-256 digest of text.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Equal compares two digests in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
