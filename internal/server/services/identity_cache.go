package services

import (
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	identityCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plaintheory_identity_cache_hits_total",
		Help: "Identity lookups served from the cache.",
	})
	identityCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "plaintheory_identity_cache_misses_total",
		Help: "Identity lookups that went to the database.",
	})
)

// IdentityCache is an LRU of users keyed by id with a fixed TTL per entry.
// Entries are copies; callers may not mutate what they get back.
type IdentityCache struct {
	cache *expirable.LRU[string, models.User]
}

func NewIdentityCache(size int, ttl time.Duration) *IdentityCache {
	if size <= 0 {
		size = 1
	}
	return &IdentityCache{cache: expirable.NewLRU[string, models.User](size, nil, ttl)}
}

func (c *IdentityCache) Get(userID string) (*models.User, bool) {
	u, ok := c.cache.Get(userID)
	if !ok {
		identityCacheMisses.Inc()
		return nil, false
	}
	identityCacheHits.Inc()
	return &u, true
}

func (c *IdentityCache) Set(u *models.User) {
	c.cache.Add(u.ID, *u)
}

func (c *IdentityCache) Delete(userID string) {
	c.cache.Remove(userID)
}
