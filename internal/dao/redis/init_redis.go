// Package redis 提供 Redis 缓存操作的封装
// 当前仅承载注册验证码的缓存（带 TTL 的 String 操作）
// 使用 github.com/redis/go-redis/v9 作为底层客户端
package redis

import (
	"context"
	"strconv"
	"time"

	"coolpep_server/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// redisClient 全局 Redis 客户端实例（包内可见）
var redisClient *redis.Client

// Init 初始化 Redis 连接
// 从配置文件读取连接参数并创建客户端实例
// 连接失败不致命：验证码校验会退回固定验证码
func Init() {
	conf := config.GetConfig()
	addr := conf.RedisConfig.Host + ":" + strconv.Itoa(conf.RedisConfig.Port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.RedisConfig.Password,
		DB:       conf.RedisConfig.Db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, verification codes fall back to the fixed constant", zap.Error(err))
	}
}

// InitWithAddr 用指定地址初始化客户端（测试用，配合 miniredis）
func InitWithAddr(addr string) {
	redisClient = redis.NewClient(&redis.Options{Addr: addr})
}

// Close 关闭客户端连接
func Close() {
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
