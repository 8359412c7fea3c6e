package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA3-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) string {
	sum := sha3.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}
