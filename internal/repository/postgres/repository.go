package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Subscriber interface {
	// Create stores email and reports whether it was new.
	Create(ctx context.Context, email string) (bool, error)
}

type PostgresRepository struct {
	Subscriber
}

func New(db DBTX) *PostgresRepository {
	return &PostgresRepository{
		Subscriber: newSubscriberRepo(db),
	}
}

// DB opens a pool for dsn and checks connectivity.
func DB(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func EnsureSchema(ctx context.Context, db DBTX) error {
	_, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS newsletter_subscribers (
    email TEXT PRIMARY KEY,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}
