// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package queue

import (
	"context"
	"time"
)

// Transport is an at-least-once job queue with visibility timeouts.
type Transport interface {
	// Enqueue stores the job and returns its ID. The Postgres transport joins
	// the transaction carried by ctx.
	Enqueue(ctx context.Context, job *Job) (string, error)
	// Dequeue claims one visible job of the given types, nil when none is ready.
	Dequeue(ctx context.Context, jobTypes ...JobType) (*Delivery, error)
	Ack(ctx context.Context, d *Delivery) error
	Retry(ctx context.Context, d *Delivery, delay time.Duration, lastError string) error
	DeadLetter(ctx context.Context, d *Delivery, reason string) error
	// Extend pushes the visibility deadline of an in-flight delivery.
	Extend(ctx context.Context, d *Delivery, visibility time.Duration) error
	Stats(ctx context.Context) (*Stats, error)
	// Transactional reports whether Enqueue commits together with the caller's transaction.
	Transactional() bool
	Ping(ctx context.Context) error
}
