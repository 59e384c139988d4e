package kvstore

import (
	"context"
	"errors"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

var _ Store = (*Cached)(nil)

// Cached puts a freecache read-through layer in front of another store.
// Writes go to the backing store first and refresh the cache only on success.
type Cached struct {
	next          Store
	cache         *freecache.Cache
	expireSeconds int
}

func NewCached(next Store, cacheSizeBytes, expireSeconds int) *Cached {
	return &Cached{
		next:          next,
		cache:         freecache.NewCache(cacheSizeBytes),
		expireSeconds: expireSeconds,
	}
}

func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	if value, err := c.cache.Get([]byte(key)); err == nil {
		return value, nil
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("kvstore cache get [%s]: %s", key, err)
	}

	value, err := c.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	c.remember(key, value)
	return value, nil
}

func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	if err := c.next.Set(ctx, key, value); err != nil {
		c.cache.Del([]byte(key))
		return err
	}
	c.remember(key, value)
	return nil
}

func (c *Cached) remember(key string, value []byte) {
	if err := c.cache.Set([]byte(key), value, c.expireSeconds); err != nil {
		// value larger than the cache segment, serve it from the backing store
		log.Tracef("kvstore cache set [%s]: %s", key, err)
		c.cache.Del([]byte(key))
	}
}

// CacheStats returns the freecache hit and miss counters.
func (c *Cached) CacheStats() (hits, misses int64) {
	return c.cache.HitCount(), c.cache.MissCount()
}
