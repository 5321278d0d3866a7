package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emrekoc/studentdesk/internal/config"
	"github.com/emrekoc/studentdesk/internal/pkg/helpers"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// PostgresDB owns the pooled set of database connections.
type PostgresDB struct {
	Pool           *pgxpool.Pool
	acquireTimeout time.Duration
}

// NewPostgresDB creates a new PostgreSQL connection pool from config.
// A malformed connection string or an unreachable store is fatal here;
// everything after startup surfaces per-call.
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	acquireTimeout := helpers.ParseDuration(cfg.Database.AcquireTimeout, 30*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), acquireTimeout)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgxpool config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnIdleTime = helpers.ParseDuration(cfg.Database.ConnMaxIdleTime, 30*time.Second)
	poolConfig.MaxConnLifetime = helpers.ParseDuration(cfg.Database.ConnMaxLifetime, time.Hour)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &PostgresDB{Pool: pool, acquireTimeout: acquireTimeout}, nil
}

// Close drains and closes the pool.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// WithTransaction checks out one connection, begins a transaction and runs
// fn on it. The transaction commits when fn returns nil and rolls back when
// it returns an error or panics; the connection goes back to the pool on
// every exit path.
func (db *PostgresDB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, db.acquireTimeout)
		defer cancel()
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
