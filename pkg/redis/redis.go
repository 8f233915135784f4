package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/civic_tracker/internal/config"
	"github.com/sirupsen/logrus"
)

// NewRedisClient создает клиент Redis по конфигурации и проверяет соединение
func NewRedisClient(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(options(cfg))

	// Проверяем соединение с Redis
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	log.WithFields(logrus.Fields{
		"addr": cfg.RedisAddr,
		"db":   cfg.RedisDB,
	}).Info("Successfully connected to Redis")
	return rdb, nil
}

func options(cfg *config.Config) *redis.Options {
	poolSize := cfg.RedisPool
	if poolSize <= 0 {
		poolSize = 10
	}
	return &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: poolSize,
	}
}
