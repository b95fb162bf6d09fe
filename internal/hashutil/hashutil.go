// Package hashutil provides the one-way hash primitive used wherever the
// application stores a stable key for a sensitive value instead of the value
// itself.
package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SHA256Hex hashes the trimmed input with SHA-256 and returns the hex digest.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(input)))
	return hex.EncodeToString(sum[:])
}
