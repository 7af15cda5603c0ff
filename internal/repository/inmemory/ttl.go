package inmemory

import (
	"sync"
	"time"
)

// TTLCache stores copies of values so callers cannot mutate cached state.
type TTLCache[T any] struct {
	mu    sync.RWMutex
	items map[string]ttlItem[T]
	now   func() time.Time
}

type ttlItem[T any] struct {
	value     T
	expiresAt time.Time
}

func NewTTLCache[T any]() *TTLCache[T] {
	return &TTLCache[T]{
		items: make(map[string]ttlItem[T]),
		now:   time.Now,
	}
}

func (c *TTLCache[T]) Get(key string) (*T, bool) {
	now := c.now()

	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[key]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	value := item.value
	return &value, true
}

func (c *TTLCache[T]) Set(key string, value *T, ttl time.Duration) {
	if value == nil || ttl <= 0 {
		c.Delete(key)
		return
	}

	c.mu.Lock()
	c.items[key] = ttlItem[T]{
		value:     *value,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *TTLCache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *TTLCache[T]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]ttlItem[T])
	c.mu.Unlock()
}
