package cache

import (
	"time"

	"stockviewer/model"

	"github.com/patrickmn/go-cache"
)

// RateLimiterCache holds per-IP limiters for the API middleware.
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)

// NewQuoteStore builds the TTL store for fetched daily tables. Entries past
// the TTL are treated as absent; Flush wipes everything regardless of age.
func NewQuoteStore(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, ttl/3)
}

// NewLastGoodStore builds the per-session last-known-good store. It never
// expires and is deliberately untouched by a quote-store flush, so a clear
// followed by a failed refetch still has a fallback.
func NewLastGoodStore() *cache.Cache {
	return cache.New(cache.NoExpiration, 0)
}

func GetBars(store *cache.Cache, key string) ([]model.Bar, bool) {
	val, found := store.Get(key)
	if !found {
		return nil, false
	}
	bars, ok := val.([]model.Bar)
	return bars, ok
}

func SetBars(store *cache.Cache, key string, bars []model.Bar, ttl time.Duration) {
	store.Set(key, bars, ttl)
}
