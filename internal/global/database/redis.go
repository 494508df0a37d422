package database

import (
	"context"
	"fmt"

	"capstone-panel-system/config"
	"capstone-panel-system/internal/global/sentry/tracing"
	"capstone-panel-system/tools"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// InitRedis 初始化 Redis 客户端，用于批量操作互斥锁
func InitRedis() {
	cfg := config.Get()
	Redis = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if tracing.IsEnabled() {
		Redis.AddHook(tracing.NewRedisSentryHook())
	}

	tools.PanicOnErr(Redis.Ping(context.Background()).Err())
}
