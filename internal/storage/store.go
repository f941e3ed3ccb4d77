// Package storage persists the last location searched in each browser
// session. Writes are last-write-wins with no expiry and no history.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/fakhrymubarak/weather-widget/internal/config"
	"github.com/fakhrymubarak/weather-widget/internal/redis"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// DefaultKey is the fixed name the last location is stored under.
const DefaultKey = "savedLocation"

// Store is the session persistence used by the widget.
type Store interface {
	// Save records location as the session's last search, replacing any earlier value.
	Save(ctx context.Context, sessionID, location string) error
	// LoadLast returns the session's last search; ok is false if there is none.
	LoadLast(ctx context.Context, sessionID string) (location string, ok bool, err error)
	Close() error
}

// Open returns the Store selected by cfg.Driver. The backend must be
// reachable: a redis server that does not answer a ping is an error.
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case "", "redis":
		client := redis.NewClient(cfg.RedisAddr)
		if err := redis.Ping(context.Background(), client); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		return NewRedisStore(client, cfg.Key), nil
	case "sqlite":
		return NewSQLiteStore(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
