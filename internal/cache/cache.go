// Package cache provides a small TTL cache used to avoid hammering the
// upstream weather and geolocation providers on every request.
package cache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the caching interface used by the service layer. Implementations
// must be safe for concurrent use.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
	Flush()
}

// memoryCache wraps patrickmn/go-cache behind the Cache interface.
type memoryCache struct {
	store *gocache.Cache
}

// New creates an in-memory TTL cache. defaultTTL applies when Set is called
// with a non-positive ttl. Expired entries are purged every defaultTTL*2.
func New(defaultTTL time.Duration) Cache {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	return &memoryCache{
		store: gocache.New(defaultTTL, defaultTTL*2),
	}
}

func (m *memoryCache) Get(key string) (any, bool) {
	return m.store.Get(key)
}

func (m *memoryCache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.store.Set(key, value, ttl)
}

func (m *memoryCache) Delete(key string) {
	m.store.Delete(key)
}

func (m *memoryCache) Flush() {
	m.store.Flush()
}

// Key builds a namespaced cache key from a kind and coordinates, rounded so
// nearby requests share an entry.
func Key(kind string, lat, lon float64) string {
	return fmt.Sprintf("%s:%.2f:%.2f", kind, lat, lon)
}
