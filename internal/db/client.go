// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

const defaultTxTimeout = time.Minute

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TxTimeout       time.Duration
	TracingEnabled  bool
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	txTimeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	state := txFromContext(ctx)
	if state == nil {
		return builder.RunWith(d.db)
	}

	tx, err := state.begin()
	if err != nil {
		d.logger.Errorf("failed to begin transaction, running outside of it: %v", err)
		return builder.RunWith(d.db)
	}

	return builder.RunWith(tx)
}

// Ping backs the database readiness check.
func (d *DBClient) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens a pgx pool for cfg.DSN and checks it can reach the database.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid database DSN: %w", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to record database stats: %w", err)
		}
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	if err := sqlDB.Ping(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	d := NewDBClientFromDB(sqlDB, cfg.TxTimeout, tracer, monitor, logger)
	d.pool = pool

	logger.Infof("connected to database, pool of %d to %d connections", cfg.MinConns, cfg.MaxConns)

	return d, nil
}

// NewDBClientFromDB wraps an already opened handle, used by tests with sqlmock.
func NewDBClientFromDB(db *sql.DB, txTimeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	if txTimeout <= 0 {
		txTimeout = defaultTxTimeout
	}

	d := new(DBClient)
	d.db = db
	d.txTimeout = txTimeout

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
