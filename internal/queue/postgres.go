// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/content-service/internal/db"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

const (
	stateQueued = "QUEUED"
	stateDead   = "DEAD"
)

var ErrDeliveryLost = errors.New("delivery is no longer owned by this consumer")

var jobColumns = []string{"id", "job_type", "payload", "attempts", "max_attempts", "COALESCE(last_error, '')", "created_at", "visible_at"}

var _ Transport = (*PostgresTransport)(nil)

// PostgresTransport keeps jobs in the jobs table of the service database.
type PostgresTransport struct {
	db         db.DBClientInterface
	visibility time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func intervalExpr(d time.Duration) sq.Sqlizer {
	return sq.Expr("NOW() + make_interval(secs => ?)", d.Seconds())
}

func (t *PostgresTransport) Transactional() bool { return true }

func (t *PostgresTransport) Ping(ctx context.Context) error { return t.db.Ping(ctx) }

func (t *PostgresTransport) Enqueue(ctx context.Context, job *Job) (string, error) {
	ctx, span := t.tracer.Start(ctx, "queue.PostgresTransport.Enqueue")
	defer span.End()

	id := job.ID
	if id == "" {
		v, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("failed to generate job ID: %w", err)
		}
		id = v.String()
	}

	_, err := t.db.Statement(ctx).
		Insert("jobs").
		Columns("id", "job_type", "payload", "state", "max_attempts").
		Values(id, string(job.Type), []byte(job.Payload), stateQueued, job.MaxAttempts).
		ExecContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue %s job: %w", job.Type, err)
	}

	return id, nil
}

// Dequeue claims the oldest visible job with SKIP LOCKED, so concurrent consumers never share one.
func (t *PostgresTransport) Dequeue(ctx context.Context, jobTypes ...JobType) (*Delivery, error) {
	ctx, span := t.tracer.Start(ctx, "queue.PostgresTransport.Dequeue")
	defer span.End()

	names := make([]string, len(jobTypes))
	for i, jt := range jobTypes {
		names[i] = string(jt)
	}

	candidate := sq.Select("id").
		From("jobs").
		Where(sq.Eq{"state": stateQueued, "job_type": names}).
		Where("visible_at <= NOW()").
		OrderBy("visible_at").
		Limit(1).
		Suffix("FOR UPDATE SKIP LOCKED")

	d := new(Delivery)
	var payload []byte
	err := t.db.Statement(ctx).
		Update("jobs").
		Set("attempts", sq.Expr("attempts + 1")).
		Set("visible_at", intervalExpr(t.visibility)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Expr("id = (?)", candidate)).
		Suffix("RETURNING " + strings.Join(jobColumns, ", ")).
		QueryRowContext(ctx).
		Scan(&d.ID, &d.Type, &payload, &d.Attempts, &d.MaxAttempts, &d.LastError, &d.CreatedAt, &d.VisibleUntil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}
	d.Payload = payload

	return d, nil
}

func (t *PostgresTransport) Ack(ctx context.Context, d *Delivery) error {
	ctx, span := t.tracer.Start(ctx, "queue.PostgresTransport.Ack")
	defer span.End()

	res, err := t.db.Statement(ctx).
		Delete("jobs").
		Where(sq.Eq{"id": d.ID, "attempts": d.Attempts}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to ack job %s: %w", d.ID, err)
	}

	return owned(res)
}

func (t *PostgresTransport) Retry(ctx context.Context, d *Delivery, delay time.Duration, lastError string) error {
	ctx, span := t.tracer.Start(ctx, "queue.PostgresTransport.Retry")
	defer span.End()

	res, err := t.db.Statement(ctx).
		Update("jobs").
		Set("visible_at", intervalExpr(delay)).
		Set("last_error", lastError).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": d.ID, "attempts": d.Attempts, "state": stateQueued}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to reschedule job %s: %w", d.ID, err)
	}

	return owned(res)
}

func (t *PostgresTransport) DeadLetter(ctx context.Context, d *Delivery, reason string) error {
	ctx, span := t.tracer.Start(ctx, "queue.PostgresTransport.DeadLetter")
	defer span.End()

	res, err := t.db.Statement(ctx).
		Update("jobs").
		Set("state", stateDead).
		Set("last_error", reason).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": d.ID, "state": stateQueued}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to dead letter job %s: %w", d.ID, err)
	}

	return owned(res)
}

func (t *PostgresTransport) Extend(ctx context.Context, d *Delivery, visibility time.Duration) error {
	ctx, span := t.tracer.Start(ctx, "queue.PostgresTransport.Extend")
	defer span.End()

	err := t.db.Statement(ctx).
		Update("jobs").
		Set("visible_at", intervalExpr(visibility)).
		Where(sq.Eq{"id": d.ID, "attempts": d.Attempts, "state": stateQueued}).
		Suffix("RETURNING visible_at").
		QueryRowContext(ctx).
		Scan(&d.VisibleUntil)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return ErrDeliveryLost
		}
		return fmt.Errorf("failed to extend job %s: %w", d.ID, err)
	}

	return nil
}

func (t *PostgresTransport) Stats(ctx context.Context) (*Stats, error) {
	ctx, span := t.tracer.Start(ctx, "queue.PostgresTransport.Stats")
	defer span.End()

	rows, err := t.db.Statement(ctx).
		Select("job_type", "state", "visible_at > NOW() AS hidden", "COUNT(*)").
		From("jobs").
		GroupBy("job_type", "state", "hidden").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read queue stats: %w", err)
	}
	defer rows.Close()

	stats := &Stats{Queued: map[JobType]int64{}, Inflight: map[JobType]int64{}}
	for rows.Next() {
		var (
			jt     JobType
			state  string
			hidden bool
			count  int64
		)
		if err := rows.Scan(&jt, &state, &hidden, &count); err != nil {
			return nil, fmt.Errorf("failed to scan queue stats: %w", err)
		}

		switch {
		case state == stateDead:
			stats.Dead += count
		case hidden:
			stats.Inflight[jt] += count
		default:
			stats.Queued[jt] += count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating queue stats rows: %w", err)
	}

	return stats, nil
}

func owned(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDeliveryLost
	}
	return nil
}

func NewPostgresTransport(c db.DBClientInterface, visibility time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *PostgresTransport {
	t := new(PostgresTransport)

	t.db = c
	t.visibility = visibility

	t.tracer = tracer
	t.monitor = monitor
	t.logger = logger

	return t
}
