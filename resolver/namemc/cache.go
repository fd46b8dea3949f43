package namemc

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const lookupTTL = 10 * time.Minute

// LookupCache remembers query -> owner name so repeated generations don't
// re-scrape the search host. A zero-value/nil-client cache is a no-op,
// which is the mode when REDIS_ADDR is unset.
type LookupCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLookupCache(addr string) *LookupCache {
	if addr == "" {
		return &LookupCache{}
	}
	return &LookupCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: lookupTTL,
	}
}

func (c *LookupCache) Get(ctx context.Context, query string) (string, bool) {
	if c == nil || c.rdb == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, cacheKey(query)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[namemc] Lookup cache read failed: %v", err)
		}
		return "", false
	}
	return val, true
}

func (c *LookupCache) Set(ctx context.Context, query, name string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(query), name, c.ttl).Err(); err != nil {
		log.Printf("[namemc] Lookup cache write failed: %v", err)
	}
}

func cacheKey(query string) string {
	return "namemc:owner:" + strings.ToLower(strings.TrimSpace(query))
}
