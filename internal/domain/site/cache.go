package site

import "time"

// Cache keeps a singleton row between reads. Each cache holds one kind of
// row under a single key.
type Cache[T any] interface {
	Get(key string) (*T, bool)
	Set(key string, value *T, ttl time.Duration)
	Delete(key string)
}

const cacheKey = "current"

type noopCache[T any] struct{}

func (noopCache[T]) Get(string) (*T, bool) {
	return nil, false
}

func (noopCache[T]) Set(string, *T, time.Duration) {}

func (noopCache[T]) Delete(string) {}

// Caches groups the per-row caches handed to WithCaches. Nil fields stay
// uncached.
type Caches struct {
	Couple     Cache[CoupleInfo]
	Settings   Cache[Settings]
	Livestream Cache[Livestream]
	TTL        time.Duration
}

func cachedGet[T any](cache Cache[T], ttl time.Duration, load func() (*T, error)) (*T, error) {
	if value, ok := cache.Get(cacheKey); ok {
		return value, nil
	}
	value, err := load()
	if err != nil {
		return nil, err
	}
	cache.Set(cacheKey, value, ttl)
	return value, nil
}
