package ledger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"recruitbot/internal/ports/output"
	"recruitbot/pkg/logx"
)

var _ output.Ledger = (*PostgresLedger)(nil)

// PostgresLedger stores notified event IDs in the notified_events table,
// one row per (set key, event ID).
type PostgresLedger struct {
	pool   *pgxpool.Pool
	setKey string
}

// NewPool creates a pgx connection pool for PostgreSQL.
func NewPool(ctx context.Context, dsn string, log logx.Logger) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info("✅ Base de données PostgreSQL connectée.")
	return pool, nil
}

func NewPostgresLedger(pool *pgxpool.Pool, setKey string) *PostgresLedger {
	return &PostgresLedger{pool: pool, setKey: setKey}
}

func (l *PostgresLedger) HasNotified(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := l.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notified_events WHERE set_key = $1 AND event_id = $2)`,
		l.setKey, eventID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has notified %s: %w", eventID, err)
	}
	return exists, nil
}

func (l *PostgresLedger) MarkNotified(ctx context.Context, eventID string) error {
	_, err := l.pool.Exec(ctx,
		`INSERT INTO notified_events (set_key, event_id) VALUES ($1, $2) ON CONFLICT (set_key, event_id) DO NOTHING`,
		l.setKey, eventID,
	)
	if err != nil {
		return fmt.Errorf("mark notified %s: %w", eventID, err)
	}
	return nil
}

func (l *PostgresLedger) Close() error {
	l.pool.Close()
	return nil
}
