// Package locker 提供基于 Redis 的单飞锁，
// 用于保证同一学院/系的批量操作（自动分组、自动分配）不会并发执行。
package locker

import (
	"context"
	"fmt"
	"time"

	"capstone-panel-system/internal/global/database"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL 锁的默认过期时间。批量操作都很短，
// TTL 只是进程中途崩溃时的兜底，正常路径靠 defer 释放。
const DefaultTTL = 30 * time.Second

// releaseScript 只删除自己持有的锁，避免误删他人重新获取的锁
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// ContextKey 生成某学院/系批量操作的锁键
// 自动分组与自动分配共用同一把锁，二者互斥
func ContextKey(school, department string) string {
	return fmt.Sprintf("panelops:%s|%s", school, department)
}

// TryLock 尝试获取锁，已被占用时返回 false（不等待、不排队）
func TryLock(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	token = fmt.Sprintf("%d", time.Now().UnixNano())
	ok, err = database.Redis.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, err
	}
	return token, ok, nil
}

// Unlock 释放锁，仅当 token 匹配时才删除
func Unlock(ctx context.Context, key, token string) error {
	err := redis.NewScript(releaseScript).Run(ctx, database.Redis, []string{key}, token).Err()
	if err != nil && err != redis.Nil {
		return err
	}
	return nil
}
