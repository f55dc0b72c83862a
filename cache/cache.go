package cache

import (
	"context"
	"time"

	"mysterystays/errors"

	"github.com/goccy/go-json"
	"github.com/karlseguin/ccache/v3"
	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-encodable values by key.
type Cache interface {
	Get(ctx context.Context, key string, target interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// DefaultLocalTTL bounds how stale the in-process copy may be relative to Redis.
const DefaultLocalTTL = 30 * time.Second

// Layered is an in-process ccache in front of an optional Redis.
type Layered struct {
	local    *ccache.Cache[[]byte]
	rdb      *redis.Client
	localTTL time.Duration
}

// NewLayered creates a Layered cache. rdb may be nil for a local-only cache.
func NewLayered(rdb *redis.Client, maxSize int64, localTTL time.Duration) *Layered {
	if maxSize <= 0 {
		maxSize = 1000
	}
	if localTTL <= 0 {
		localTTL = DefaultLocalTTL
	}
	return &Layered{
		local:    ccache.New(ccache.Configure[[]byte]().MaxSize(maxSize)),
		rdb:      rdb,
		localTTL: localTTL,
	}
}

func (l *Layered) Get(ctx context.Context, key string, target interface{}) (bool, error) {
	if item := l.local.Get(key); item != nil && !item.Expired() {
		if err := json.Unmarshal(item.Value(), target); err != nil {
			return false, errors.NewAppError(errors.ErrCodeCacheError, "failed to decode "+key, err)
		}
		return true, nil
	}
	if l.rdb == nil {
		return false, nil
	}

	var raw json.RawMessage
	found, err := GetFromRedis(ctx, l.rdb, key, &raw)
	if err != nil {
		return false, errors.NewAppError(errors.ErrCodeCacheError, "failed to read "+key, err)
	}
	if !found {
		return false, nil
	}
	l.local.Set(key, []byte(raw), l.localTTL)
	if err := json.Unmarshal(raw, target); err != nil {
		return false, errors.NewAppError(errors.ErrCodeCacheError, "failed to decode "+key, err)
	}
	return true, nil
}

func (l *Layered) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeCacheError, "failed to encode "+key, err)
	}
	localTTL := l.localTTL
	if ttl > 0 && ttl < localTTL {
		localTTL = ttl
	}
	l.local.Set(key, data, localTTL)
	if l.rdb == nil {
		return nil
	}
	if err := SetToRedis(ctx, l.rdb, key, json.RawMessage(data), ttl); err != nil {
		return errors.NewAppError(errors.ErrCodeCacheError, "failed to write "+key, err)
	}
	return nil
}

func (l *Layered) Delete(ctx context.Context, key string) error {
	l.local.Delete(key)
	if l.rdb == nil {
		return nil
	}
	if err := DeleteFromRedis(ctx, l.rdb, key); err != nil {
		return errors.NewAppError(errors.ErrCodeCacheError, "failed to delete "+key, err)
	}
	return nil
}

// Stop releases the local cache's background worker.
func (l *Layered) Stop() {
	l.local.Stop()
}
