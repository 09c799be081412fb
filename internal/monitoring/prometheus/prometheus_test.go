// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/canonical/content-service/internal/logging"
)

func TestMonitorJobOutcome(t *testing.T) {
	m := NewMonitor("content-service-test", logging.NewNoopLogger())

	tags := map[string]string{"job_type": "quiz-generation", "outcome": "completed"}

	if err := m.IncJobOutcome(tags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.IncJobOutcome(tags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v := testutil.ToFloat64(m.jobOutcomes.With(tags)); v != 2 {
		t.Fatalf("expected counter to be 2, got %v", v)
	}
}

func TestMonitorUninstantiatedMetrics(t *testing.T) {
	m := new(Monitor)

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Fatal("expected error for missing histogram")
	}
	if err := m.SetDependencyAvailability(nil, 1); err == nil {
		t.Fatal("expected error for missing gauge")
	}
	if err := m.SetJobDurationMetric(nil, 1); err == nil {
		t.Fatal("expected error for missing histogram")
	}
	if err := m.IncJobOutcome(nil); err == nil {
		t.Fatal("expected error for missing counter")
	}
}
