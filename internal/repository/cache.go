package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_tracker/internal/metrics"
)

type CacheRepository struct {
	redisClient *redis.Client
}

func NewCacheRepository(redisClient *redis.Client) *CacheRepository {
	return &CacheRepository{redisClient: redisClient}
}

// GetMetricsFromCache возвращает nil, nil при промахе
func (r *CacheRepository) GetMetricsFromCache(ctx context.Context, key string) (*metrics.Metrics, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get metrics from cache: %w", err)
	}

	m := &metrics.Metrics{}
	if err := json.Unmarshal(val, m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metrics from cache: %w", err)
	}
	return m, nil
}

// SetMetricsCache сохраняет метрики в Redis
func (r *CacheRepository) SetMetricsCache(ctx context.Context, key string, m *metrics.Metrics, ttl time.Duration) error {
	val, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set metrics in cache: %w", err)
	}
	return nil
}
