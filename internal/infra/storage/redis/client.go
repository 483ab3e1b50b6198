// Package redis stores transaction summaries and the wallet session in Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// DefaultSummaryTTL bounds how long a cached summary lives.
const DefaultSummaryTTL = 24 * time.Hour

type client struct {
	conn       *redis.Client
	summaryTTL time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	summaryTTL time.Duration
}

type Option func(*config)

func WithSummaryTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.summaryTTL = ttl
	}
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		summaryTTL: DefaultSummaryTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{
		conn:       conn,
		summaryTTL: cfg.summaryTTL,
	}, nil
}
