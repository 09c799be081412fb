// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

type txKey struct{}

// txState is the transaction of a WithTx call. It is only begun by the first
// statement, so a WithTx that never touches the database costs nothing.
type txState struct {
	mu sync.Mutex

	db      *sql.DB
	timeout time.Duration

	tx     *sql.Tx
	cancel context.CancelFunc
}

func (s *txState) begin() (*sql.Tx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx != nil {
		return s.tx, nil
	}

	// detached from the caller so a cancelled request cannot abort a commit half way
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	s.tx, s.cancel = tx, cancel
	return tx, nil
}

func (s *txState) finish(commit bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		return nil
	}
	defer s.cancel()

	if commit {
		return s.tx.Commit()
	}

	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func txFromContext(ctx context.Context) *txState {
	s, _ := ctx.Value(txKey{}).(*txState)
	return s
}

// WithTx runs fn with a context whose statements share one transaction, committed
// when fn returns nil and rolled back otherwise. Nested calls join the outer
// transaction, so services can compose storage writes with queue enqueues.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithTx")
	defer span.End()

	state := &txState{db: d.db, timeout: d.txTimeout}

	defer func() {
		if p := recover(); p != nil {
			_ = state.finish(false)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, state)); err != nil {
		if rbErr := state.finish(false); rbErr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rbErr)
		}
		return err
	}

	if err := state.finish(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
