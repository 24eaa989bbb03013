package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// ConnectRedis connects the client backing the JWT logout blacklist. The
// service stays up without Redis: middleware keeps its own in-memory
// blacklist, so a failed connection is logged and nil is returned.
func ConnectRedis() *redis.Client {
	opts, err := redisOptions()
	if err != nil {
		log.Printf("Warning: invalid REDIS_URL: %v", err)
		log.Println("Token blacklist will fall back to in-memory storage")
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
		log.Println("Token blacklist will fall back to in-memory storage")
		return nil
	}

	log.Println("Connected to Redis")
	RedisClient = client
	return client
}

// redisOptions builds the connection options from REDIS_URL when set,
// otherwise from the individual REDIS_* variables.
func redisOptions() (*redis.Options, error) {
	if url := os.Getenv("REDIS_URL"); url != "" {
		return redis.ParseURL(url)
	}

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	db := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if parsed, err := strconv.Atoi(dbStr); err == nil {
			db = parsed
		}
	}

	// Blacklist lookups happen on every authenticated request, so keep the
	// timeouts short and the pool small.
	return &redis.Options{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MaxRetries:   2,
	}, nil
}

// GetRedisClient returns the Redis client instance, nil when unavailable.
func GetRedisClient() *redis.Client {
	return RedisClient
}

// CloseRedis closes the Redis connection
func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
