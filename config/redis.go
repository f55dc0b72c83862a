package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis connects to REDIS_ADDR. It returns a nil client when the address is unset.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	addr := GetEnv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("REDIS_ADDR not set, running with the in-process cache only")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: GetEnv("REDIS_USER", ""),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	res, err := rdb.Ping(ctx).Result()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	log.Println("Connected to Redis:", res)
	return rdb, nil
}
