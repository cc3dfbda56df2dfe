package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 of data. Layout bytes are hashed with this
// before being folded into cache keys, so identical layouts share entries
// no matter where they were loaded from.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a namespaced key from a prefix and the JSON encoding of
// parts. The full 64-character digest is kept to rule out collisions.
func hashKey(prefix string, parts ...any) string {
	raw, _ := json.Marshal(parts)
	sum := sha256.Sum256(raw)
	return prefix + ":" + hex.EncodeToString(sum[:])
}
