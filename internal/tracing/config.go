// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/content-service/internal/logging"
)

// Config selects the span exporter: OTLP over gRPC when GRPCEndpoint is set,
// OTLP over HTTP when HTTPEndpoint is set, pretty printed stdout otherwise.
type Config struct {
	GRPCEndpoint string
	HTTPEndpoint string

	// SampleRatio is the share of root spans kept, out of range values mean always.
	SampleRatio float64
	Version     string

	Enabled bool
	Logger  logging.LoggerInterface
}

func NewConfig(enabled bool, grpcEndpoint, httpEndpoint string, sampleRatio float64, version string, logger logging.LoggerInterface) *Config {
	c := new(Config)

	c.Enabled = enabled
	c.GRPCEndpoint = grpcEndpoint
	c.HTTPEndpoint = httpEndpoint
	c.SampleRatio = sampleRatio
	c.Version = version
	c.Logger = logger

	return c
}

func NewNoopConfig() *Config {
	return &Config{Logger: logging.NewNoopLogger()}
}
