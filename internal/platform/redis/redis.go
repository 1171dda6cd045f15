package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// ErrEmptyAddr is returned by Open when no address is configured.
var ErrEmptyAddr = errors.New("empty redis addr")

// Client wraps go-redis client to allow future extensions.
type Client struct {
	*redis.Client
}

// Open creates a new Redis client and pings it to validate the connection.
func Open(ctx context.Context, addr, password string, db int) (*Client, error) {
	if addr == "" {
		return nil, ErrEmptyAddr
	}
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &Client{Client: c}, nil
}
