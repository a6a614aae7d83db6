package db

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
)

// Connect opens the Postgres pool and verifies it is reachable.
func Connect(ctx context.Context, connString string) (*sql.DB, error) {
	pool, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
