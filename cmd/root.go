// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const tokenEnv = "CONTENT_SERVICE_TOKEN"

var (
	userID       string
	accessToken  string
	httpEndpoint string
)

var rootCmd = &cobra.Command{
	Use:   "content-service",
	Short: "Content Service",
	Long: `Content Service turns articles into audio, podcast, video and quiz outputs.

The serve and worker commands run the service, the submission and output
commands drive a running instance over its REST API.`,
	SilenceUsage: true,
}

// Execute runs the command line, cancelling the command context on SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&httpEndpoint, "http-endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&userID, "user-id", "", "Identity ID sent in the gateway header when JWT authentication is disabled")
	rootCmd.PersistentFlags().StringVar(&accessToken, "token", os.Getenv(tokenEnv), "Bearer token, defaults to $"+tokenEnv)
}
