// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/content-service/internal/identity"
	"github.com/canonical/content-service/internal/kratos"
	"github.com/canonical/content-service/pkg/authentication"
	"github.com/canonical/content-service/pkg/organizations"
	"github.com/canonical/content-service/pkg/outputs"
	"github.com/canonical/content-service/pkg/presets"
	"github.com/canonical/content-service/pkg/profiles"
	"github.com/canonical/content-service/pkg/submissions"
	"github.com/canonical/content-service/pkg/tags"
	"github.com/canonical/content-service/pkg/web"
	"github.com/canonical/content-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the REST API, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	c, err := newComponents("content-service")
	if err != nil {
		return err
	}
	defer c.Close()

	specs := c.specs
	tracer, monitor, logger := c.tracer, c.monitor, c.logger

	authenticate := identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.OIDCJWKSURL,
			authentication.AccessPolicy{
				AllowedSubjects: specs.OIDCAllowedSubjects,
				RequiredScope:   specs.OIDCRequiredScope,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to initialize JWT authentication: %w", err)
		}
		authenticate = authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
	} else {
		logger.Infof("JWT authentication is disabled, trusting the %s header", identity.HeaderName)
	}

	kratosClient := kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)

	profileService := profiles.NewService(c.storage, kratosClient, tracer, monitor, logger)
	organizationService := organizations.NewService(c.storage, c.authorizer, specs.InvitationLifetime, tracer, monitor, logger)
	webhookService := webhooks.NewService(c.storage, c.authorizer, tracer, monitor, logger)
	tagService := tags.NewService(c.storage, tracer, monitor, logger)
	presetService := presets.NewService(c.storage, tracer, monitor, logger)

	router := web.NewRouter(
		&web.RouterConfig{
			Authenticate:      authenticate,
			EnsureProfile:     profiles.NewMiddleware(profileService, logger).Ensure,
			RequireMembership: organizations.NewMiddleware(organizationService, logger).RequireMembership,
			Public: []web.EndpointsInterface{
				webhooks.NewAPI(webhookService, specs.WebhookAPIKey, logger),
			},
			Authenticated: []web.EndpointsInterface{
				organizations.NewAPI(organizationService, tracer, monitor, logger),
			},
			Members: []web.EndpointsInterface{
				submissions.NewAPI(c.submissions, tracer, monitor, logger),
				outputs.NewAPI(c.outputs, tracer, monitor, logger),
				tags.NewAPI(tagService, tracer, monitor, logger),
				presets.NewAPI(presetService, tracer, monitor, logger),
			},
			Dependencies:   c.dependencies(),
			AllowedOrigins: specs.AllowedOrigins,
		},
		tracer,
		monitor,
		logger,
	)

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	return serveUntilSignal(srv, logger)
}
