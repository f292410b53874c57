package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CompletionKey generates a cache key for one completion call. The model is
// part of the key so switching models never serves stale completions.
func CompletionKey(model, system, prompt string) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write([]byte(system))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return "credo:v1:" + hex.EncodeToString(h.Sum(nil))
}
