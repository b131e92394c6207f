package utils

import (
	"github.com/go-redis/redis/v7"
)

// GetRedis returns a *redis.Client against addr, or the local default when
// addr is empty.
func GetRedis(addr string) *redis.Client {
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
}
