package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/vibe-cart/internal/config"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 3 * time.Second

// redisCache 带 key 前缀的 JSON 缓存句柄
type redisCache struct {
	client *redis.Client
	prefix string
}

// 未初始化或初始化失败时保持 nil，读写全部降级为直查
var store *redisCache

// InitRedis 初始化 Redis 连接并探活。
// 连接失败时返回错误且缓存保持禁用，不阻止进程启动。
func InitRedis(cfg *config.RedisConfig) error {
	store = nil
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "vc"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("redis ping failed: %w", err)
	}

	store = &redisCache{client: client, prefix: prefix}
	return nil
}

// Enabled 判断缓存是否可用
func Enabled() bool {
	return store != nil && store.client != nil
}

// Client 获取 Redis 客户端，缓存禁用时返回 nil
func Client() *redis.Client {
	if !Enabled() {
		return nil
	}
	return store.client
}

// Close 关闭 Redis 连接
func Close() error {
	if !Enabled() {
		return nil
	}
	err := store.client.Close()
	store = nil
	return err
}

// GetJSON 读取 JSON 缓存，返回是否命中
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	return store.getJSON(ctx, key, dest)
}

// SetJSON 写入 JSON 缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	return store.setJSON(ctx, key, value, ttl)
}

func (c *redisCache) getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisCache) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), payload, ttl).Err()
}

func (c *redisCache) key(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return c.prefix
	}
	return c.prefix + ":" + trimmed
}
