package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each collection document under <Prefix><name>.
type RedisBackend struct {
	Client  *redis.Client
	Prefix  string
	Timeout time.Duration
}

type RedisOptions struct {
	Address  string
	Password string
	DB       int
}

func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

// NewRedisBackend pings the server once so a bad address fails at startup
// rather than on the first menu action.
func NewRedisBackend(client *redis.Client, prefix string) (*RedisBackend, error) {
	b := &RedisBackend{Client: client, Prefix: prefix, Timeout: 5 * time.Second}

	ctx, cancel := b.context()
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}
	return b, nil
}

func (b *RedisBackend) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), b.Timeout)
}

func (b *RedisBackend) key(name string) string {
	return b.Prefix + name
}

func (b *RedisBackend) Describe(name string) string {
	return "redis:" + b.key(name)
}

func (b *RedisBackend) Load(name string) ([]byte, error) {
	ctx, cancel := b.context()
	defer cancel()

	data, err := b.Client.Get(ctx, b.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", b.key(name), err)
	}
	return data, nil
}

func (b *RedisBackend) Save(name string, data []byte) error {
	ctx, cancel := b.context()
	defer cancel()

	if err := b.Client.Set(ctx, b.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", b.key(name), err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	if b.Client != nil {
		return b.Client.Close()
	}
	return nil
}
