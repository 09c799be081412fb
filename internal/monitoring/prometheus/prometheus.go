// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	jobDuration            *prometheus.HistogramVec
	jobOutcomes            *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(tags).Set(value)

	return nil
}

// SetJobDurationMetric expects job_type and outcome tags
func (m *Monitor) SetJobDurationMetric(tags map[string]string, value float64) error {
	if m.jobDuration == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.jobDuration.With(tags).Observe(value)

	return nil
}

// IncJobOutcome expects job_type and outcome tags
func (m *Monitor) IncJobOutcome(tags map[string]string) error {
	if m.jobOutcomes == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.jobOutcomes.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"route", "status"},
	)

	m.jobDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_job_duration_seconds",
			Help:    "time spent executing a media generation job",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1200},
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"job_type", "outcome"},
	)

	for _, h := range []*prometheus.HistogramVec{m.responseTime, m.jobDuration} {
		if err := prometheus.Register(h); err != nil {
			m.logger.Debugf("histogram already registered: %v", err)
		}
	}
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"component"},
	)

	if err := prometheus.Register(m.dependencyAvailability); err != nil {
		m.logger.Debugf("gauge already registered: %v", err)
	}
}

func (m *Monitor) registerCounters() {
	m.jobOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_jobs_total",
			Help: "media generation jobs by final outcome of the attempt",
			ConstLabels: prometheus.Labels{
				"service": m.service,
			},
		},
		[]string{"job_type", "outcome"},
	)

	if err := prometheus.Register(m.jobOutcomes); err != nil {
		m.logger.Debugf("counter already registered: %v", err)
	}
}

// NewMonitor creates a new monitor object and register its metrics on the default prometheus registry
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
