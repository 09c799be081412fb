// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package queue

import (
	"math"
	"slices"
	"time"
)

// RetryPolicy controls how failed attempts of a job type are rescheduled.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	Multiplier     float64
	MaxBackoff     time.Duration
	// RetryableCodes lists the vendor error codes worth another attempt.
	RetryableCodes []string
}

// Backoff returns the delay before the attempt following the given one.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	mult := p.Multiplier
	if mult < 1 {
		mult = 1
	}

	d := float64(p.InitialBackoff) * math.Pow(mult, float64(attempt-1))
	if p.MaxBackoff > 0 && d > float64(p.MaxBackoff) {
		return p.MaxBackoff
	}

	return time.Duration(d)
}

func (p RetryPolicy) Retryable(code string) bool {
	return slices.Contains(p.RetryableCodes, code)
}

var defaultRetryableCodes = []string{"rate_limited", "unavailable", "timeout", "network"}

// DefaultPolicies returns the retry policy of every job type.
func DefaultPolicies() map[JobType]RetryPolicy {
	return map[JobType]RetryPolicy{
		JobAudio: {
			MaxAttempts:    3,
			InitialBackoff: 30 * time.Second,
			Multiplier:     2,
			MaxBackoff:     5 * time.Minute,
			RetryableCodes: defaultRetryableCodes,
		},
		JobPodcast: {
			MaxAttempts:    3,
			InitialBackoff: 30 * time.Second,
			Multiplier:     2,
			MaxBackoff:     5 * time.Minute,
			RetryableCodes: defaultRetryableCodes,
		},
		JobInteractivePodcast: {
			MaxAttempts:    3,
			InitialBackoff: time.Minute,
			Multiplier:     2,
			MaxBackoff:     10 * time.Minute,
			RetryableCodes: defaultRetryableCodes,
		},
		JobVideo: {
			MaxAttempts:    2,
			InitialBackoff: 2 * time.Minute,
			Multiplier:     2,
			MaxBackoff:     15 * time.Minute,
			RetryableCodes: append(slices.Clone(defaultRetryableCodes), "render_pending"),
		},
		JobQuiz: {
			MaxAttempts:    4,
			InitialBackoff: 10 * time.Second,
			Multiplier:     2,
			MaxBackoff:     2 * time.Minute,
			RetryableCodes: defaultRetryableCodes,
		},
	}
}

// Overrides replaces individual fields of every policy, zero values leave the default.
type Overrides struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func (o Overrides) Apply(policies map[JobType]RetryPolicy) map[JobType]RetryPolicy {
	out := make(map[JobType]RetryPolicy, len(policies))
	for jt, p := range policies {
		if o.MaxAttempts > 0 {
			p.MaxAttempts = o.MaxAttempts
		}
		if o.InitialBackoff > 0 {
			p.InitialBackoff = o.InitialBackoff
		}
		if o.MaxBackoff > 0 {
			p.MaxBackoff = o.MaxBackoff
		}
		out[jt] = p
	}
	return out
}
