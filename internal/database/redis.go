package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/haydenmontgomery/Warbler/internal/config"
	"github.com/haydenmontgomery/Warbler/pkg/logger"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

// InitRedis connects to Redis. Token revocation and caching are disabled
// (not fatal) when the connection fails.
func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	if _, err := Redis.Ping(Ctx).Result(); err != nil {
		logger.Warn().Err(err).Msg("Failed to connect to Redis. Token revocation and caching will be disabled.")
		Redis = nil
	} else {
		logger.Info().Msg("Connected to Redis")
	}
}

// BlacklistToken revokes a token by JTI until it would have expired anyway.
func BlacklistToken(jti string, ttl time.Duration) error {
	if Redis == nil || jti == "" {
		return nil
	}
	key := fmt.Sprintf("token_blacklist:%s", jti)
	return Redis.Set(Ctx, key, "revoked", ttl).Err()
}

// IsTokenBlacklisted reports whether a token's JTI has been revoked.
func IsTokenBlacklisted(jti string) bool {
	if Redis == nil || jti == "" {
		return false
	}
	key := fmt.Sprintf("token_blacklist:%s", jti)
	n, err := Redis.Exists(Ctx, key).Result()
	if err != nil {
		return false
	}
	return n > 0
}

// CacheSet stores a JSON-encoded value with an expiration.
func CacheSet(key string, value interface{}, expiration time.Duration) error {
	if Redis == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, data, expiration).Err()
}

// CacheGet loads a JSON-encoded value into dest. Returns redis.Nil on miss.
func CacheGet(key string, dest interface{}) error {
	if Redis == nil {
		return redis.Nil
	}
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// CacheInvalidate drops a cached key after a write.
func CacheInvalidate(key string) {
	if Redis == nil {
		return
	}
	Redis.Del(Ctx, key)
}
