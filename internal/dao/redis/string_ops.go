package redis

import (
	"context"
	"errors"
	"time"

	"coolpep_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// ==================== 基础 String 操作 ====================

// SetKeyEx 设置键值对并指定过期时间
func SetKeyEx(ctx context.Context, key string, value string, timeout time.Duration) error {
	if redisClient == nil {
		return errorx.New(errorx.CodeCacheError, "redis client not initialized")
	}
	if err := redisClient.Set(ctx, key, value, timeout).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// GetKey 获取键对应的值
// 键不存在返回空字符串和 nil（不视为错误）
func GetKey(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", errorx.New(errorx.CodeCacheError, "redis client not initialized")
	}
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// DelKeyIfExists 删除键（不存在时静默成功）
func DelKeyIfExists(ctx context.Context, key string) error {
	if redisClient == nil {
		return errorx.New(errorx.CodeCacheError, "redis client not initialized")
	}
	if err := redisClient.Del(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis del key %s", key)
	}
	return nil
}
