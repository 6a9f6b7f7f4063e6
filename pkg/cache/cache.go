// Package cache stores computed puzzle answers so repeated runs over the same
// input skip the solve.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON files under the user's cache directory (CLI default)
//   - [RedisCache]: a shared Redis instance
//   - [MongoCache]: a MongoDB collection with a TTL index
//
// [NullCache] disables caching. Keys are produced by a [Keyer] so that every
// backend sees the same key for the same day and input.
package cache

import (
	"context"
	"time"
)

// TTLAnswer is how long a cached answer stays valid. Puzzle inputs never
// change, so the limit only keeps stale entries from piling up.
const TTLAnswer = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// A miss is (nil, false, nil), never an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	// Clear removes all entries and returns how many were removed.
	Clear(ctx context.Context) (int, error)
}

// Keyer generates cache keys.
type Keyer interface {
	// AnswerKey identifies the answer of day for the input with the given
	// hash. Day 5 hashes its layout into inputHash as well.
	AnswerKey(day int, inputHash string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// AnswerKey returns "answer:<sha256>".
func (DefaultKeyer) AnswerKey(day int, inputHash string) string {
	return hashKey("answer", day, inputHash)
}
