package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashLines hashes a sequence of lines. Line boundaries are part of the hash,
// so ["ab"] and ["a", "b"] differ.
func HashLines(lines ...[]string) string {
	var b strings.Builder
	for _, group := range lines {
		for _, l := range group {
			b.WriteString(l)
			b.WriteByte('\n')
		}
		b.WriteByte(0)
	}
	return Hash([]byte(b.String()))
}
