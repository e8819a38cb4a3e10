package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"web3dir/metrics"
)

// DB is the read-only query executor backing the API.
type DB struct {
	Pool *pgxpool.Pool
}

// Options tunes the connection pool. Zero values fall back to pgxpool defaults.
type Options struct {
	MaxConns int
	MinConns int
}

func Connect(ctx context.Context, databaseURL string, opts Options) (*DB, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if opts.MaxConns > 0 {
		config.MaxConns = int32(opts.MaxConns)
	}
	if opts.MinConns > 0 {
		config.MinConns = int32(opts.MinConns)
	}
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established")
	return &DB{Pool: pool}, nil
}

// Ping runs a trivial round-trip query. It only proves the database answers;
// it says nothing about the schema.
func (db *DB) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveQuery("ping", time.Since(start).Seconds(), err)
	}()

	var one int
	if err := db.Pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}
	return nil
}

func (db *DB) Close() {
	db.Pool.Close()
	log.Println("Database connection closed")
}
