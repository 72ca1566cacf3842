package client

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache is the swap-in point for response caching. The default is an
// in-process go-cache instance, tests can inject their own.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache returns a Cache backed by go-cache with the given TTL.
func NewMemoryCache(ttl time.Duration) Cache {
	return &memoryCache{store: gocache.New(ttl, 2*ttl)}
}

func (m *memoryCache) Get(key string) ([]byte, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (m *memoryCache) Set(key string, value []byte) {
	m.store.SetDefault(key, value)
}

func (m *memoryCache) Delete(key string) {
	m.store.Delete(key)
}

// noopCache disables caching entirely.
type noopCache struct{}

func (noopCache) Get(string) ([]byte, bool) { return nil, false }
func (noopCache) Set(string, []byte)        {}
func (noopCache) Delete(string)             {}
