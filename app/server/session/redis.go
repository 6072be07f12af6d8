package session

import (
	"climate-solutions/app/server/constants"
	"context"
	"fmt"
	"github.com/redis/go-redis/v9"
	"time"
)

// RedisRevoker 把注销的会话 ID 记录在 redis 中，直到会话本身过期
type RedisRevoker struct {
	rdb *redis.Client
}

func NewRedisRevoker(rdb *redis.Client) *RedisRevoker {
	return &RedisRevoker{rdb: rdb}
}

func (r *RedisRevoker) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	if ttl <= 0 {
		// 已经过期，无需记录
		return nil
	}
	return r.rdb.Set(ctx, fmt.Sprintf(constants.CacheKeySessionRevoked, id), 1, ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, id string) (bool, error) {
	n, err := r.rdb.Exists(ctx, fmt.Sprintf(constants.CacheKeySessionRevoked, id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
