// Package database opens the optional shared stores used by the API.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPingTimeout bounds the startup connectivity check.
const DefaultPingTimeout = 3 * time.Second

// ErrRedisURLMissing is returned when no connection string was configured.
var ErrRedisURLMissing = errors.New("redis url must not be empty")

// ConnectRedis parses url, opens a client and verifies it with a PING. The
// client is closed again when the ping fails.
func ConnectRedis(ctx context.Context, url string, pingTimeout time.Duration) (*redis.Client, error) {
	if url == "" {
		return nil, ErrRedisURLMissing
	}

	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse rate limit store url: %w", err)
	}

	if pingTimeout <= 0 {
		pingTimeout = DefaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	client := redis.NewClient(options)
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("reach rate limit store at %s: %w", options.Addr, err)
	}

	return client, nil
}
