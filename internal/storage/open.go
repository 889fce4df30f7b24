package storage

import (
	"context"
	"fmt"

	"github.com/dadprep/dadprep-backend/internal/config"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Open builds the Store selected by STORE_BACKEND. The returned close func
// releases backend resources and is never nil.
func Open(ctx context.Context, cfg *config.Config, db *gorm.DB) (Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case config.StoreMemory:
		return NewMemoryStore(), noop, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr(), err)
		}
		return NewRedisStore(client), client.Close, nil
	default:
		return NewSQLStore(db), noop, nil
	}
}
