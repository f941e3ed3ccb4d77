package redis

import (
	"context"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// NewClient returns a client for addr.
func NewClient(addr string) *redisv9.Client {
	return redisv9.NewClient(&redisv9.Options{
		Addr: addr,
	})
}

// Ping checks that the server behind c answers within two seconds.
func Ping(ctx context.Context, c *redisv9.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.Ping(ctx).Err()
}
