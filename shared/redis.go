package shared

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// CacheClient wraps the redis connection used for link-lookup caching and
// the hot-click counters.
type CacheClient struct {
	config   *CacheConfig
	rdClient *redis.Client
}

func NewCacheClient(config *CacheConfig) *CacheClient {
	return &CacheClient{config: config}
}

func (c *CacheClient) Connect(ctx context.Context) error {
	c.rdClient = redis.NewClient(&redis.Options{
		Addr:     c.config.Host + ":" + c.config.Port,
		Password: c.config.Password,
		DB:       c.config.DB,
	})

	_, err := c.rdClient.Ping(ctx).Result()
	return err
}

func (c *CacheClient) Close() error {
	return c.rdClient.Close()
}

// Get returns redis.Nil as the error when the key does not exist.
func (c *CacheClient) Get(ctx context.Context, key string) (string, error) {
	return c.rdClient.Get(ctx, key).Result()
}

func (c *CacheClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.rdClient.Set(ctx, key, value, ttl).Err()
}

func (c *CacheClient) Del(ctx context.Context, keys ...string) error {
	return c.rdClient.Del(ctx, keys...).Err()
}

// Incr bumps a counter key atomically and returns the new value.
func (c *CacheClient) Incr(ctx context.Context, key string) (int64, error) {
	return c.rdClient.Incr(ctx, key).Result()
}
