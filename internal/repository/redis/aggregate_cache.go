package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"smartShopper/business/recommendation"
	"smartShopper/domain"
	"smartShopper/pkg/logger"
)

const defaultAggregateTTL = 10 * time.Minute

// AggregateCache fronts a ReviewAggregateResolver with a Redis cache.
// Cache failures are never fatal: a miss or a broken connection simply falls
// through to the inner resolver.
type AggregateCache struct {
	client *redis.Client
	inner  recommendation.ReviewAggregateResolver
	ttl    time.Duration
}

func NewAggregateCache(client *redis.Client, inner recommendation.ReviewAggregateResolver) *AggregateCache {
	return &AggregateCache{
		client: client,
		inner:  inner,
		ttl:    defaultAggregateTTL,
	}
}

func (c *AggregateCache) GetReviewAggregate(ctx context.Context, productID string) (domain.ReviewAggregate, error) {
	key := fmt.Sprintf("aggregate:product:%s", productID)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var agg domain.ReviewAggregate
		if err := json.Unmarshal([]byte(val), &agg); err == nil {
			return agg, nil
		}
		// corrupted entry, fall through to the source
		logger.Warn("dropping corrupted aggregate cache entry", "key", key)
		_ = c.client.Del(ctx, key).Err()
	} else if err != redis.Nil {
		logger.Warn("aggregate cache read failed", "key", key, "error", err.Error())
	}

	agg, err := c.inner.GetReviewAggregate(ctx, productID)
	if err != nil {
		return domain.ReviewAggregate{}, err
	}

	if data, err := json.Marshal(agg); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			logger.Warn("aggregate cache write failed", "key", key, "error", err.Error())
		}
	}

	return agg, nil
}
