package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRedis(t *testing.T) {
	assert.Equal(t, "redis.internal:6379", GetRedis("redis.internal:6379").Options().Addr)
	assert.Equal(t, "localhost:6379", GetRedis("").Options().Addr)
}
