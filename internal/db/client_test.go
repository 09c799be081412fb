// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := logging.NewNoopLogger()
	return NewDBClientFromDB(sqlDB, 0, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func approve(ctx context.Context, c *DBClient) error {
	_, err := c.Statement(ctx).Update("outputs").Set("is_approved", true).Where("id = ?", "out-1").ExecContext(ctx)
	return err
}

func TestWithTx(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		expect  func(sqlmock.Sqlmock)
		fn      func(context.Context, *DBClient) error
		wantErr error
	}{
		{
			name: "commits after statements",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE outputs SET is_approved = \\$1 WHERE id = \\$2").WithArgs(true, "out-1").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: approve,
		},
		{
			name: "rolls back on error",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE outputs").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectRollback()
			},
			fn: func(ctx context.Context, c *DBClient) error {
				if err := approve(ctx, c); err != nil {
					return err
				}
				return boom
			},
			wantErr: boom,
		},
		{
			name:   "no statements opens no transaction",
			expect: func(sqlmock.Sqlmock) {},
			fn:     func(context.Context, *DBClient) error { return nil },
		},
		{
			name:    "error before any statement skips rollback",
			expect:  func(sqlmock.Sqlmock) {},
			fn:      func(context.Context, *DBClient) error { return boom },
			wantErr: boom,
		},
		{
			name: "nested calls join the outer transaction",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE outputs").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectExec("INSERT INTO jobs").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: func(ctx context.Context, c *DBClient) error {
				if err := approve(ctx, c); err != nil {
					return err
				}
				return c.WithTx(ctx, func(inner context.Context) error {
					_, err := c.Statement(inner).Insert("jobs").Columns("id").Values("job-1").ExecContext(inner)
					return err
				})
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, mock := newTestClient(t)
			test.expect(mock)

			err := c.WithTx(context.Background(), func(ctx context.Context) error {
				return test.fn(ctx, c)
			})

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	c, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE outputs").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = c.WithTx(context.Background(), func(ctx context.Context) error {
			if err := approve(ctx, c); err != nil {
				return err
			}
			panic("handler bug")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatementOutsideTransaction(t *testing.T) {
	c, mock := newTestClient(t)

	mock.ExpectExec("UPDATE outputs").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, approve(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	logger := logging.NewNoopLogger()
	c := NewDBClientFromDB(sqlDB, 0, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	assert.Error(t, c.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPagination(t *testing.T) {
	tests := []struct {
		page, size int64
		wantSize   uint64
		wantOffset uint64
	}{
		{page: 0, size: 0, wantSize: DefaultPageSize, wantOffset: 0},
		{page: 1, size: 10, wantSize: 10, wantOffset: 0},
		{page: 3, size: 20, wantSize: 20, wantOffset: 40},
		{page: 2, size: 1000, wantSize: MaxPageSize, wantOffset: MaxPageSize},
		{page: -4, size: -1, wantSize: DefaultPageSize, wantOffset: 0},
	}

	for _, test := range tests {
		size := PageSize(test.size)
		assert.Equal(t, test.wantSize, size)
		assert.Equal(t, test.wantOffset, Offset(test.page, size))
	}
}
