package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

const (
	breedsKey     = "breeds:all"
	breedCacheTTL = 5 * time.Minute
)

// BreedCache is a read-through cache over the breed list backed by Redis.
// Cache failures are logged and treated as misses; the service falls back
// to the repository, so a degraded Redis never breaks reads.
type BreedCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewBreedCache creates a BreedCache wrapping the given Redis client.
func NewBreedCache(client *redis.Client, log zerolog.Logger) *BreedCache {
	return &BreedCache{client: client, log: log}
}

func (c *BreedCache) GetAll(ctx context.Context) ([]*domain.Breed, bool) {
	raw, err := c.client.Get(ctx, breedsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("breed cache read failed, falling back to store")
		}
		return nil, false
	}

	var breeds []*domain.Breed
	if err := json.Unmarshal(raw, &breeds); err != nil {
		c.log.Warn().Err(err).Msg("breed cache entry corrupt, dropping it")
		c.Invalidate(ctx)
		return nil, false
	}
	return breeds, true
}

func (c *BreedCache) SetAll(ctx context.Context, breeds []*domain.Breed) {
	raw, err := json.Marshal(breeds)
	if err != nil {
		c.log.Warn().Err(err).Msg("breed cache encode failed")
		return
	}
	if err := c.client.Set(ctx, breedsKey, raw, breedCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("breed cache write failed")
	}
}

func (c *BreedCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, breedsKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("breed cache invalidation failed")
	}
}
