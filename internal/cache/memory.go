package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is the in-process tier
type Memory struct {
	store *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL
func NewMemory(defaultTTL, cleanupInterval time.Duration) *Memory {
	return &Memory{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the cached bytes for key, if present and unexpired
func (c *Memory) Get(key string) ([]byte, bool) {
	if v, found := c.store.Get(key); found {
		return v.([]byte), true
	}
	return nil, false
}

// Set stores value under key for ttl (zero means the default TTL)
func (c *Memory) Set(key string, value []byte, ttl time.Duration) error {
	c.store.Set(key, value, ttl)
	return nil
}

// Delete removes key
func (c *Memory) Delete(key string) error {
	c.store.Delete(key)
	return nil
}

// Clear drops every entry
func (c *Memory) Clear() error {
	c.store.Flush()
	return nil
}
