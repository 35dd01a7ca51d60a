// Package cache wires the HTTP response cache the stats client fetches
// through. The caching itself is the httpcache transport with its default
// options; this package only supplies the storage backends.
package cache

import (
	"context"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long Redis keeps a cached response.
const DefaultTTL = 15 * time.Minute

const keyPrefix = "nbastats:http:"

// NewMemoryClient returns an HTTP client whose transport caches responses
// in process memory.
func NewMemoryClient(timeout time.Duration) *http.Client {
	client := httpcache.NewMemoryCacheTransport().Client()
	client.Timeout = timeout
	return client
}

// NewRedisClient returns an HTTP client whose transport caches responses
// in Redis. Entries expire after ttl regardless of their cache headers.
func NewRedisClient(rdb *redis.Client, ttl, timeout time.Duration) *http.Client {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	client := httpcache.NewTransport(&redisCache{client: rdb, ttl: ttl}).Client()
	client.Timeout = timeout
	return client
}

// redisCache adapts a Redis client to the httpcache.Cache interface.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (c *redisCache) Get(key string) ([]byte, bool) {
	data, err := c.client.Get(context.Background(), keyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *redisCache) Set(key string, responseBytes []byte) {
	c.client.Set(context.Background(), keyPrefix+key, responseBytes, c.ttl)
}

func (c *redisCache) Delete(key string) {
	c.client.Del(context.Background(), keyPrefix+key)
}
