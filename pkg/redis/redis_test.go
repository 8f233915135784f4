package redis

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shenikar/civic_tracker/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{RedisAddr: "cache:6379", RedisPass: "secret", RedisDB: 2, RedisPool: 25}

	opts := options(cfg)

	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 25, opts.PoolSize)
}

func TestOptions_DefaultPoolSize(t *testing.T) {
	opts := options(&config.Config{RedisAddr: "localhost:6379"})

	assert.Equal(t, 10, opts.PoolSize)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	// Подготовка
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Действие
	client, err := NewRedisClient(ctx, &config.Config{RedisAddr: "127.0.0.1:1"}, log)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
