// Package cache provides keyed byte caches for two consumers: seeded
// analysis results (deterministic, safe to replay) and fetched page
// bodies for URL scans.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is the storage interface shared by the memory, disk and layered
// implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ResultKey derives the cache key for a seeded analysis. Unseeded runs are
// intentionally uncacheable: their heuristic layer must stay fresh, so no
// key form exists for them.
func ResultKey(text, language string, densityBias float64, seed int64) string {
	payload := fmt.Sprintf("%s\x00%s\x00%v\x00%d", text, language, densityBias, seed)
	hash := sha256.Sum256([]byte(payload))
	return "discern:result:v1:" + hex.EncodeToString(hash[:])
}

// PageKey derives the cache key for a fetched URL body.
func PageKey(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "discern:page:v1:" + hex.EncodeToString(hash[:])
}
