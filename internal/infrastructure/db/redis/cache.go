package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gamevault/review-system/internal/core/domain"
)

const (
	gameListKey = "games:list"
	gameListTTL = 5 * time.Minute
)

// GameCache is a read-through cache for the public game list, serialised as
// JSON under a single key. Writes to the catalog invalidate it.
type GameCache struct {
	client *redis.Client
}

// NewGameCache creates a GameCache wrapping the given Redis client.
func NewGameCache(client *redis.Client) *GameCache {
	return &GameCache{client: client}
}

func (c *GameCache) GetList(ctx context.Context) ([]*domain.Game, error) {
	raw, err := c.client.Get(ctx, gameListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var games []*domain.Game
	if err := json.Unmarshal(raw, &games); err != nil {
		// A corrupt entry behaves like a miss; the next SetList repairs it.
		return nil, domain.ErrCacheMiss
	}
	return games, nil
}

func (c *GameCache) SetList(ctx context.Context, games []*domain.Game) error {
	raw, err := json.Marshal(games)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	return c.client.Set(ctx, gameListKey, raw, gameListTTL).Err()
}

func (c *GameCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, gameListKey).Err()
}
