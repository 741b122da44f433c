// services/cache.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyLeagueState = "game:state:league:%s"

// GameStateCache is an optional redis read-through cache for the
// per-league game state (jackpot + leaderboard). A nil cache is valid
// and always misses, so callers never branch on configuration.
type GameStateCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewGameStateCache(ctx context.Context, addr, password string, db int) (*GameStateCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &GameStateCache{rdb: rdb, ttl: 30 * time.Second}, nil
}

// GetLeagueState returns the cached payload for a league, if any.
func (c *GameStateCache) GetLeagueState(ctx context.Context, league string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(ctx, fmt.Sprintf(keyLeagueState, league)).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// SetLeagueState stores a league payload with the cache TTL. Staleness
// is bounded by the TTL; there is no explicit invalidation.
func (c *GameStateCache) SetLeagueState(ctx context.Context, league string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Set(ctx, fmt.Sprintf(keyLeagueState, league), payload, c.ttl)
}
