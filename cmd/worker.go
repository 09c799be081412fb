// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/canonical/content-service/internal/config"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/queue"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/vendors/avatar"
	"github.com/canonical/content-service/internal/vendors/captions"
	"github.com/canonical/content-service/internal/vendors/mediaproc"
	"github.com/canonical/content-service/internal/vendors/objectstore"
	"github.com/canonical/content-service/internal/vendors/speech"
	"github.com/canonical/content-service/internal/vendors/textgen"
	"github.com/canonical/content-service/internal/vendors/translation"
	"github.com/canonical/content-service/pkg/metrics"
	"github.com/canonical/content-service/pkg/pipeline"
	"github.com/canonical/content-service/pkg/status"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "worker runs the generation pipelines",
	Long: `Consume generation jobs from the queue and drive outputs through their pipelines.

Metrics and readiness are served on WORKER_PORT.`,
	Run: func(cmd *cobra.Command, args []string) {
		jobTypes, _ := cmd.Flags().GetStringSlice("job-types")
		if err := work(jobTypes); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	workerCmd.Flags().StringSlice("job-types", nil, "Job types consumed by this worker, all of them by default")

	rootCmd.AddCommand(workerCmd)
}

func parseJobTypes(names []string) ([]queue.JobType, error) {
	jobTypes := make([]queue.JobType, 0, len(names))
	for _, name := range names {
		jt := queue.JobType(strings.TrimSpace(name))

		known := false
		for _, t := range queue.JobTypes {
			if t == jt {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown job type %q", name)
		}

		jobTypes = append(jobTypes, jt)
	}

	return jobTypes, nil
}

func newVendors(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (pipeline.Vendors, error) {
	httpClient := tracing.NewHTTPClient(http.DefaultClient)

	text := textgen.NewCohere(
		textgen.Config{
			APIKey:  specs.CohereAPIKey,
			BaseURL: specs.CohereBaseURL,
			Model:   specs.CohereModel,
			Timeout: specs.TextGenerationTimeout,
		},
		httpClient,
		tracer,
		monitor,
		logger,
	)

	store, err := objectstore.NewStore(
		ctx,
		objectstore.Config{
			Bucket:       specs.S3Bucket,
			Region:       specs.S3Region,
			Endpoint:     specs.S3Endpoint,
			UsePathStyle: specs.S3UsePathStyle,
			PublicURL:    specs.S3PublicURL,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return pipeline.Vendors{}, fmt.Errorf("failed to create object store: %w", err)
	}

	return pipeline.Vendors{
		Text:       text,
		Translator: translation.NewTranslator(text, tracer, monitor, logger),
		Speech: speech.NewClient(
			speech.Config{
				URL:     specs.SpeechURL,
				APIKey:  specs.SpeechAPIKey,
				Model:   specs.SpeechModel,
				Timeout: specs.SpeechTimeout,
			},
			httpClient,
			tracer,
			monitor,
			logger,
		),
		Avatar: avatar.NewClient(
			avatar.Config{
				URL:     specs.AvatarURL,
				APIKey:  specs.AvatarAPIKey,
				Timeout: specs.AvatarTimeout,
			},
			httpClient,
			tracer,
			monitor,
			logger,
		),
		Captions: captions.NewClient(
			captions.Config{
				URL:     specs.CaptionsURL,
				APIKey:  specs.CaptionsAPIKey,
				Style:   specs.CaptionsStyle,
				Timeout: specs.CaptionsTimeout,
			},
			httpClient,
			tracer,
			monitor,
			logger,
		),
		Uploader: store,
		Media: mediaproc.NewProcessor(
			mediaproc.Config{
				WorkDir:    specs.FFmpegWorkDir,
				BumperPath: specs.BumperPath,
				MusicPath:  specs.MusicPath,
			},
			nil,
			nil,
			tracer,
			monitor,
			logger,
		),
	}, nil
}

func work(jobTypeNames []string) error {
	jobTypes, err := parseJobTypes(jobTypeNames)
	if err != nil {
		return err
	}

	c, err := newComponents("content-worker")
	if err != nil {
		return err
	}
	defer c.Close()

	specs := c.specs
	tracer, monitor, logger := c.tracer, c.monitor, c.logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vendors, err := newVendors(ctx, specs, tracer, monitor, logger)
	if err != nil {
		return err
	}

	pipelines := pipeline.NewPipelines(
		pipeline.Config{
			NarratorVoice:      specs.NarratorVoice,
			GuestVoice:         specs.GuestVoice,
			DefaultAvatarID:    specs.DefaultAvatarID,
			AvatarPollInterval: specs.AvatarPollInterval,
		},
		vendors,
		c.storage,
		tracer,
		monitor,
		logger,
	)

	workerConfig := pipeline.WorkerConfig{
		Concurrency:         specs.WorkerConcurrency,
		PollInterval:        specs.PollInterval,
		Visibility:          specs.VisibilityTimeout,
		MaxPipelineDuration: specs.MaxPipelineDuration,
		JobTypes:            jobTypes,
	}

	if budget := pipeline.StaleBudget(workerConfig, c.policies); specs.StaleAfter <= budget {
		return fmt.Errorf("STALE_PROCESSING_AFTER %s must exceed %s, one attempt plus the longest backoff and visibility timeout", specs.StaleAfter, budget)
	}

	worker := pipeline.NewWorker(
		workerConfig,
		c.queue,
		c.outputs,
		pipelines,
		c.policies,
		tracer,
		monitor,
		logger,
	)
	if err := worker.Start(ctx); err != nil {
		return err
	}
	defer worker.Stop()

	go pipeline.NewReaper(c.outputs, specs.StaleAfter, specs.ReapInterval, tracer, monitor, logger).Run(ctx)

	mux := chi.NewMux()
	metrics.NewAPI(logger).RegisterEndpoints(mux)
	status.NewAPI(c.dependencies(), tracer, monitor, logger).RegisterEndpoints(mux)

	logger.Infof("Serving worker metrics on port %v", specs.WorkerPort)

	srv := &http.Server{
		Addr:        fmt.Sprintf("0.0.0.0:%v", specs.WorkerPort),
		ReadTimeout: time.Second * 15,
		IdleTimeout: time.Second * 60,
		Handler:     mux,
	}

	return serveUntilSignal(srv, logger)
}
