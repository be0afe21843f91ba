// Package cache keeps author snapshots in Redis in front of the user store.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

const keyPrefix = "author:"

type Cmdable interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	Pipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

// AuthorCache is a read-through ports.AuthorDirectory. Snapshots may be up to
// ttl old. When Redis is unavailable every lookup goes to the source.
type AuthorCache struct {
	rdb    Cmdable
	source ports.AuthorDirectory
	ttl    time.Duration
	log    *zap.Logger
}

func NewAuthorCache(rdb Cmdable, source ports.AuthorDirectory, ttl time.Duration, log *zap.Logger) *AuthorCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthorCache{rdb: rdb, source: source, ttl: ttl, log: log}
}

func (c *AuthorCache) Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.AuthorSummary, error) {
	found := make(map[uuid.UUID]domain.AuthorSummary, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	missing := c.lookup(ctx, ids, found)
	if len(missing) == 0 {
		return found, nil
	}

	loaded, err := c.source.Summaries(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, summary := range loaded {
		found[id] = summary
	}
	c.store(ctx, loaded)
	return found, nil
}

// lookup fills found from Redis and returns the ids it could not serve.
func (c *AuthorCache) lookup(ctx context.Context, ids []uuid.UUID, found map[uuid.UUID]domain.AuthorSummary) []uuid.UUID {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}

	values, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		c.log.Warn("author cache read failed", zap.Error(err))
		return ids
	}

	var missing []uuid.UUID
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}
		var summary domain.AuthorSummary
		if err := json.Unmarshal([]byte(raw), &summary); err != nil {
			c.log.Warn("dropping unreadable author cache entry", zap.String("key", keys[i]), zap.Error(err))
			missing = append(missing, ids[i])
			continue
		}
		found[ids[i]] = summary
	}
	return missing
}

func (c *AuthorCache) store(ctx context.Context, summaries map[uuid.UUID]domain.AuthorSummary) {
	if len(summaries) == 0 {
		return
	}

	_, err := c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for id, summary := range summaries {
			raw, err := json.Marshal(summary)
			if err != nil {
				return err
			}
			pipe.Set(ctx, key(id), raw, c.ttl)
		}
		return nil
	})
	if err != nil {
		c.log.Warn("author cache write failed", zap.Error(err))
	}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}
