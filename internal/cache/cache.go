// Package cache stores finalized per-source record sets so repeated builds
// over unchanged inputs skip re-segmentation. Keys are content hashes: any
// edit to a source document invalidates its entry naturally.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface shared by the tiers
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key hashes the source tag together with the document text
func Key(work, text string) string {
	h := sha256.New()
	h.Write([]byte(work))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return "aggadah-v1-" + hex.EncodeToString(h.Sum(nil))
}
