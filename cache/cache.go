package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache is a small wrapper around go-cache used for per-session state. Entries
// expire after the default TTL unless refreshed.
type Cache struct {
	cache *cache.Cache
}

func New(defaultTTL time.Duration) *Cache {
	return &Cache{
		cache: cache.New(defaultTTL, 2*defaultTTL),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) {
	c.cache.Set(key, value, expiration)
}

func (c *Cache) SetDefault(key string, value interface{}) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Delete(key string) {
	c.cache.Delete(key)
}
