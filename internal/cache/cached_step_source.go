package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/blaisecz/step-tracker/internal/service"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how stale a cached series can get when a write bypasses
// the service layer.
const DefaultTTL = 10 * time.Minute

var (
	_ service.StepSource           = (*CachedStepSource)(nil)
	_ service.StepCacheInvalidator = (*CachedStepSource)(nil)
)

// CachedStepSource caches fetched series under one redis key per user,
// generation and day range. Invalidate bumps the user's generation, so a read
// that raced a write stores its snapshot under a generation no reader asks
// for again. Redis failures fall through to the wrapped source.
type CachedStepSource struct {
	next  service.StepSource
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedStepSource(next service.StepSource, cache *redis.Client, ttl time.Duration) *CachedStepSource {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedStepSource{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func generationKey(userID uuid.UUID) string {
	return fmt.Sprintf("steps:gen:%s", userID)
}

func seriesKey(userID uuid.UUID, gen int64, from, to time.Time) string {
	return fmt.Sprintf("steps:%s:%d:%s:%s", userID, gen,
		from.Format(domain.DayLayout), to.Format(domain.DayLayout))
}

func (c *CachedStepSource) generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	gen, err := c.cache.Get(ctx, generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *CachedStepSource) FetchDailyStepCounts(ctx context.Context, userID uuid.UUID, from, to time.Time) (domain.StepSeries, error) {
	// The generation must be read before the wrapped source
	gen, err := c.generation(ctx, userID)
	if err != nil {
		log.Printf("[cache] redis read error: %v", err)
		return c.next.FetchDailyStepCounts(ctx, userID, from, to)
	}
	key := seriesKey(userID, gen, from, to)

	val, err := c.cache.Get(ctx, key).Bytes()
	if err == nil {
		var series domain.StepSeries
		if err := json.Unmarshal(val, &series); err == nil {
			return series, nil
		}

		log.Printf("[cache] corrupted series for user %s, dropping key", userID)
		c.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[cache] redis read error: %v", err)
	}

	series, err := c.next.FetchDailyStepCounts(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(series); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("[cache] redis write error: %v", err)
		}
	}

	return series, nil
}

// Invalidate moves the user to a new generation. Keys of older generations
// expire on their own TTL.
func (c *CachedStepSource) Invalidate(ctx context.Context, userID uuid.UUID) {
	if err := c.cache.Incr(ctx, generationKey(userID)).Err(); err != nil {
		log.Printf("[cache] failed to invalidate for user %s: %v", userID, err)
	}
}
