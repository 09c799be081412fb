// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/tracing"
)

const (
	redisPrefix     = "content:"
	redisJobsKey    = redisPrefix + "jobs"
	redisDeadKey    = redisPrefix + "dead"
	maxClaimRetries = 5
)

var _ Transport = (*RedisTransport)(nil)

// RedisTransport keeps one sorted set per job type scored by the time the job
// becomes visible, job bodies live in a shared hash.
//
// Enqueue does not take part in database transactions, callers compensate
// when the enqueue fails after their own commit.
type RedisTransport struct {
	client     redis.UniversalClient
	visibility time.Duration
	now        func() time.Time
	cursor     atomic.Uint32

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func readyKey(jt JobType) string {
	return redisPrefix + "queue:" + string(jt)
}

func score(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func (t *RedisTransport) Transactional() bool { return false }

func (t *RedisTransport) Ping(ctx context.Context) error { return t.client.Ping(ctx).Err() }

func (t *RedisTransport) Enqueue(ctx context.Context, job *Job) (string, error) {
	ctx, span := t.tracer.Start(ctx, "queue.RedisTransport.Enqueue")
	defer span.End()

	stored := *job
	if stored.ID == "" {
		v, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("failed to generate job ID: %w", err)
		}
		stored.ID = v.String()
	}
	stored.Attempts = 0
	stored.CreatedAt = t.now()

	raw, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("failed to encode job: %w", err)
	}

	_, err = t.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, redisJobsKey, stored.ID, raw)
		pipe.ZAdd(ctx, readyKey(stored.Type), redis.Z{Score: score(stored.CreatedAt), Member: stored.ID})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to enqueue %s job: %w", stored.Type, err)
	}

	return stored.ID, nil
}

func (t *RedisTransport) Dequeue(ctx context.Context, jobTypes ...JobType) (*Delivery, error) {
	ctx, span := t.tracer.Start(ctx, "queue.RedisTransport.Dequeue")
	defer span.End()

	if len(jobTypes) == 0 {
		return nil, nil
	}

	// rotate the first type polled on every call
	start := int(t.cursor.Add(1)-1) % len(jobTypes)

	for i := range jobTypes {
		d, err := t.claim(ctx, jobTypes[(start+i)%len(jobTypes)])
		if err != nil {
			return nil, err
		}
		if d != nil {
			return d, nil
		}
	}

	return nil, nil
}

func (t *RedisTransport) claim(ctx context.Context, jt JobType) (*Delivery, error) {
	key := readyKey(jt)

	for i := 0; i < maxClaimRetries; i++ {
		var d *Delivery

		err := t.client.Watch(ctx, func(tx *redis.Tx) error {
			now := t.now()

			ids, err := tx.ZRangeByScore(ctx, key, &redis.ZRangeBy{
				Min:   "-inf",
				Max:   strconv.FormatFloat(score(now), 'f', 0, 64),
				Count: 1,
			}).Result()
			if err != nil || len(ids) == 0 {
				return err
			}

			job, err := t.load(ctx, tx, ids[0])
			if err != nil {
				return err
			}

			job.Attempts++
			raw, err := json.Marshal(job)
			if err != nil {
				return err
			}

			visibleUntil := now.Add(t.visibility)
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.HSet(ctx, redisJobsKey, job.ID, raw)
				pipe.ZAdd(ctx, key, redis.Z{Score: score(visibleUntil), Member: job.ID})
				return nil
			})
			if err != nil {
				return err
			}

			d = &Delivery{Job: *job, VisibleUntil: visibleUntil}
			return nil
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to claim %s job: %w", jt, err)
		}

		return d, nil
	}

	t.logger.Debugf("gave up claiming %s job after %d conflicts", jt, maxClaimRetries)
	return nil, nil
}

type hashReader interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}

func (t *RedisTransport) load(ctx context.Context, c hashReader, id string) (*Job, error) {
	raw, err := c.HGet(ctx, redisJobsKey, id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDeliveryLost
		}
		return nil, err
	}

	job := new(Job)
	if err := json.Unmarshal(raw, job); err != nil {
		return nil, fmt.Errorf("failed to decode job %s: %w", id, err)
	}

	return job, nil
}

// mutate re-reads the job under WATCH and applies fn only while the delivery still owns it.
func (t *RedisTransport) mutate(ctx context.Context, d *Delivery, fn func(pipe redis.Pipeliner, job *Job) error) error {
	key := readyKey(d.Type)

	for i := 0; i < maxClaimRetries; i++ {
		err := t.client.Watch(ctx, func(tx *redis.Tx) error {
			job, err := t.load(ctx, tx, d.ID)
			if err != nil {
				return err
			}
			if job.Attempts != d.Attempts {
				return ErrDeliveryLost
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				return fn(pipe, job)
			})
			return err
		}, key)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}

	return fmt.Errorf("job %s kept changing: %w", d.ID, redis.TxFailedErr)
}

func (t *RedisTransport) Ack(ctx context.Context, d *Delivery) error {
	ctx, span := t.tracer.Start(ctx, "queue.RedisTransport.Ack")
	defer span.End()

	return t.mutate(ctx, d, func(pipe redis.Pipeliner, job *Job) error {
		pipe.ZRem(ctx, readyKey(job.Type), job.ID)
		pipe.HDel(ctx, redisJobsKey, job.ID)
		return nil
	})
}

func (t *RedisTransport) Retry(ctx context.Context, d *Delivery, delay time.Duration, lastError string) error {
	ctx, span := t.tracer.Start(ctx, "queue.RedisTransport.Retry")
	defer span.End()

	return t.mutate(ctx, d, func(pipe redis.Pipeliner, job *Job) error {
		job.LastError = lastError
		raw, err := json.Marshal(job)
		if err != nil {
			return err
		}

		pipe.HSet(ctx, redisJobsKey, job.ID, raw)
		pipe.ZAddXX(ctx, readyKey(job.Type), redis.Z{Score: score(t.now().Add(delay)), Member: job.ID})
		return nil
	})
}

func (t *RedisTransport) DeadLetter(ctx context.Context, d *Delivery, reason string) error {
	ctx, span := t.tracer.Start(ctx, "queue.RedisTransport.DeadLetter")
	defer span.End()

	return t.mutate(ctx, d, func(pipe redis.Pipeliner, job *Job) error {
		job.LastError = reason
		raw, err := json.Marshal(job)
		if err != nil {
			return err
		}

		pipe.ZRem(ctx, readyKey(job.Type), job.ID)
		pipe.HDel(ctx, redisJobsKey, job.ID)
		pipe.LPush(ctx, redisDeadKey, raw)
		return nil
	})
}

func (t *RedisTransport) Extend(ctx context.Context, d *Delivery, visibility time.Duration) error {
	ctx, span := t.tracer.Start(ctx, "queue.RedisTransport.Extend")
	defer span.End()

	visibleUntil := t.now().Add(visibility)

	err := t.mutate(ctx, d, func(pipe redis.Pipeliner, job *Job) error {
		pipe.ZAddXX(ctx, readyKey(job.Type), redis.Z{Score: score(visibleUntil), Member: job.ID})
		return nil
	})
	if err != nil {
		return err
	}

	d.VisibleUntil = visibleUntil
	return nil
}

func (t *RedisTransport) Stats(ctx context.Context) (*Stats, error) {
	ctx, span := t.tracer.Start(ctx, "queue.RedisTransport.Stats")
	defer span.End()

	now := strconv.FormatFloat(score(t.now()), 'f', 0, 64)
	stats := &Stats{Queued: map[JobType]int64{}, Inflight: map[JobType]int64{}}

	for _, jt := range JobTypes {
		queued, err := t.client.ZCount(ctx, readyKey(jt), "-inf", now).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to count %s jobs: %w", jt, err)
		}
		hidden, err := t.client.ZCount(ctx, readyKey(jt), "("+now, "+inf").Result()
		if err != nil {
			return nil, fmt.Errorf("failed to count %s jobs: %w", jt, err)
		}

		stats.Queued[jt] = queued
		stats.Inflight[jt] = hidden
	}

	dead, err := t.client.LLen(ctx, redisDeadKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count dead jobs: %w", err)
	}
	stats.Dead = dead

	return stats, nil
}

func NewRedisTransport(client redis.UniversalClient, visibility time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisTransport {
	t := new(RedisTransport)

	t.client = client
	t.visibility = visibility
	t.now = time.Now

	t.tracer = tracer
	t.monitor = monitor
	t.logger = logger

	return t
}
