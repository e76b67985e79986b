// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"handyhub/config"

	"github.com/go-redis/redis/v8"
)

const (
	// ServiceCachePrefix is the prefix for cached service snapshots.
	ServiceCachePrefix = "service:"
	// ServiceCacheTTL bounds staleness of cached service snapshots.
	ServiceCacheTTL = 5 * time.Minute
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
)

// ServiceCacheKey builds the cache key for a service snapshot.
func ServiceCacheKey(serviceID string) string {
	return ServiceCachePrefix + serviceID
}

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
