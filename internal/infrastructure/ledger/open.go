package ledger

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"

	"recruitbot/internal/domain"
	"recruitbot/internal/ports/output"
	"recruitbot/pkg/logx"
)

// Store is a Ledger owning a connection that must be released on shutdown.
type Store interface {
	output.Ledger
	Close() error
}

// Open connects to the ledger named by rawURL. postgres:// URLs get their
// schema migrated before use; redis:// URLs use one set under setKey.
func Open(ctx context.Context, rawURL, setKey string, log logx.Logger) (Store, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("ledger url: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		if err := RunMigrations(rawURL, log); err != nil {
			return nil, err
		}
		pool, err := NewPool(ctx, rawURL, log)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return NewPostgresLedger(pool, setKey), nil

	case "redis", "rediss":
		opts, err := redis.ParseURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("redis url: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		log.Info("✅ Redis connecté.", logx.String("addr", opts.Addr))
		return NewRedisLedger(client, setKey), nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLedger, u.Scheme)
	}
}
