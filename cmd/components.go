// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"

	"github.com/canonical/content-service/internal/authorization"
	"github.com/canonical/content-service/internal/config"
	"github.com/canonical/content-service/internal/db"
	"github.com/canonical/content-service/internal/events"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/monitoring/prometheus"
	"github.com/canonical/content-service/internal/openfga"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/version"
	"github.com/canonical/content-service/pkg/outputs"
	"github.com/canonical/content-service/pkg/status"
	"github.com/canonical/content-service/pkg/submissions"
)

// components are the clients shared by the serve and worker processes.
type components struct {
	specs *config.EnvSpec

	logger  logging.LoggerInterface
	monitor monitoring.MonitorInterface
	tracer  tracing.TracingInterface

	db         *db.DBClient
	storage    *storage.Storage
	queue      queue.Transport
	publisher  events.PublisherInterface
	authorizer *authorization.Authorizer
	policies   map[queue.JobType]queue.RetryPolicy

	submissions *submissions.Service
	outputs     *outputs.Service

	closers []func()
}

func loadSpecs() *config.EnvSpec {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	return specs
}

func newComponents(service string) (*components, error) {
	c := new(components)
	c.specs = loadSpecs()
	specs := c.specs

	c.logger = logging.NewLogger(specs.LogLevel)
	c.logger.Debugf("env vars: %v", specs)

	c.monitor = prometheus.NewMonitor(service, c.logger)
	tracer := tracing.NewTracer(
		service,
		tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, specs.TracingSampleRatio, version.Version, c.logger),
	)
	c.tracer = tracer
	c.closers = append(c.closers, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(ctx); err != nil {
			c.logger.Errorf("failed to flush spans: %v", err)
		}
	})

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TxTimeout:       specs.DBTxTimeout,
			TracingEnabled:  specs.TracingEnabled,
		},
		c.tracer,
		c.monitor,
		c.logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %v", err)
	}
	c.db = dbClient
	c.closers = append(c.closers, dbClient.Close)

	c.storage = storage.NewStorage(dbClient, c.tracer, c.monitor, c.logger)

	switch specs.QueueBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		c.closers = append(c.closers, func() { _ = client.Close() })
		c.queue = queue.NewRedisTransport(client, specs.VisibilityTimeout, c.tracer, c.monitor, c.logger)
	case "postgres", "":
		c.queue = queue.NewPostgresTransport(dbClient, specs.VisibilityTimeout, c.tracer, c.monitor, c.logger)
	default:
		c.Close()
		return nil, fmt.Errorf("unknown queue backend %q", specs.QueueBackend)
	}
	c.logger.Infof("Using %s queue backend", specs.QueueBackend)

	if specs.KafkaEnabled {
		publisher, err := events.DialKafkaPublisher(specs.KafkaBrokers, specs.KafkaTopic, c.tracer, c.monitor, c.logger)
		if err != nil {
			c.Close()
			return nil, err
		}
		c.publisher = publisher
		c.logger.Infof("Publishing output transitions to %s", specs.KafkaTopic)
	} else {
		c.publisher = events.NewNoopPublisher(c.logger)
	}
	c.closers = append(c.closers, func() { _ = c.publisher.Close() })

	c.authorizer = newAuthorizer(specs, c.tracer, c.monitor, c.logger)

	c.policies = queue.Overrides{
		MaxAttempts:    specs.RetryMaxAttempts,
		InitialBackoff: specs.RetryInitialBackoff,
		MaxBackoff:     specs.RetryMaxBackoff,
	}.Apply(queue.DefaultPolicies())

	c.submissions = submissions.NewService(c.storage, c.queue, c.publisher, c.policies, c.tracer, c.monitor, c.logger)
	c.outputs = outputs.NewService(c.storage, c.queue, c.submissions, c.publisher, c.policies, c.tracer, c.monitor, c.logger)

	return c, nil
}

func newAuthorizer(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *authorization.Authorizer {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)
	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)

	logger.Info("Authorization is enabled")
	if authorizer.ValidateModel(context.Background()) != nil {
		panic("Invalid authorization model provided")
	}

	return authorizer
}

// dependencies are pinged by the readiness endpoint.
func (c *components) dependencies() map[string]status.PingerInterface {
	deps := map[string]status.PingerInterface{
		"database": c.db,
	}
	if c.specs.QueueBackend == "redis" {
		deps["queue"] = c.queue
	}

	return deps
}

func (c *components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.logger.Sync()
}

// serveUntilSignal runs srv until SIGINT or SIGTERM, then shuts it down gracefully.
func serveUntilSignal(srv *http.Server, logger logging.LoggerInterface) error {
	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
