package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikash/portfolio-backend/internal/config"
	"github.com/bikash/portfolio-backend/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
		Password:     "",
		DB:           0,
		User:         "",
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := models.PublicStatus{
		Emoji:       "🚀",
		Message:     "Запускаю новый проект",
		IsActive:    true,
		LastUpdated: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	err := cache.Set("status:current", expected, time.Minute)
	require.NoError(t, err)

	var actual models.PublicStatus
	found, err := cache.Get("status:current", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected, actual)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out models.PublicStatus
	found, err := cache.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	err := cache.Set("status:current", models.PublicStatus{Emoji: "💻"}, time.Minute)
	require.NoError(t, err)

	err = cache.Invalidate("status:current")
	require.NoError(t, err)

	var out models.PublicStatus
	found, err := cache.Get("status:current", &out)
	require.NoError(t, err)
	assert.False(t, found)
}
