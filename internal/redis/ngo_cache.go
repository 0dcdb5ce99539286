package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Hetwork/swachhsathi-cf/internal/domain"
)

// NGOSource is the store the cache falls back to on a miss.
type NGOSource interface {
	ListNGOs(ctx context.Context) ([]domain.NGO, error)
}

// NGOCache is a cache-aside view over the NGO roster. NGO records are static
// reference data, so a short TTL is enough to keep assignment lookups off the
// database on the hot path.
type NGOCache struct {
	client *goredis.Client
	source NGOSource
	key    string
	ttl    time.Duration
}

func NewNGOCache(r *Redis, source NGOSource, ttl time.Duration) *NGOCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &NGOCache{
		client: r.Client,
		source: source,
		key:    "ngos:all",
		ttl:    ttl,
	}
}

// ByCategory returns the ids of NGOs whose categories set contains category.
func (c *NGOCache) ByCategory(ctx context.Context, category domain.Category) ([]string, error) {
	ngos, err := c.getAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(ngos))
	for _, ngo := range ngos {
		for _, known := range ngo.Categories {
			if known == category {
				ids = append(ids, ngo.ID)
				break
			}
		}
	}
	return ids, nil
}

func (c *NGOCache) getAll(ctx context.Context) ([]domain.NGO, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err == nil {
		var ngos []domain.NGO
		if err := json.Unmarshal(data, &ngos); err == nil {
			return ngos, nil
		}
		// corrupt entry: fall through to the source and rewrite
	} else if !errors.Is(err, goredis.Nil) {
		return nil, err
	}

	ngos, err := c.source.ListNGOs(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(ngos); err == nil {
		_ = c.client.Set(ctx, c.key, b, c.ttl).Err()
	}
	return ngos, nil
}

// Invalidate drops the cached roster, called after an NGO write.
func (c *NGOCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
