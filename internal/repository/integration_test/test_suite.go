package integration_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

var (
	redisInstance *redis.Client
	redisOnce     sync.Once
)

func GetRedis() *redis.Client {
	redisOnce.Do(func() {
		// .env.test подгружает Makefile
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}

		redisInstance = redis.NewClient(&redis.Options{Addr: addr})
	})

	return redisInstance
}

func SetupRedis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, GetRedis().Ping(ctx).Err())
}

func TeardownRedis(t *testing.T, pattern string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	keys, err := GetRedis().Keys(ctx, pattern).Result()
	require.NoError(t, err)
	if len(keys) == 0 {
		return
	}
	require.NoError(t, GetRedis().Del(ctx, keys...).Err())
}
