// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/clientcredentials"
)

type tokenOptions struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	IssuerURL    string
	Scopes       []string
	Format       string
}

var tokenOpts tokenOptions

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token using Client Credentials flow",
	Long: `Get an access token for the content API using the OAuth2 client credentials flow.

The token can be passed to the client commands with --token or CONTENT_SERVICE_TOKEN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		tokenURL, err := resolveTokenURL(ctx, tokenOpts)
		if err != nil {
			return err
		}

		config := &clientcredentials.Config{
			ClientID:     tokenOpts.ClientID,
			ClientSecret: tokenOpts.ClientSecret,
			TokenURL:     tokenURL,
			Scopes:       tokenOpts.Scopes,
		}

		token, err := config.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		if tokenOpts.Format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
				"access_token": token.AccessToken,
				"token_type":   token.TokenType,
				"expiry":       token.Expiry,
			})
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

// resolveTokenURL uses the explicit token URL or discovers it from the issuer.
func resolveTokenURL(ctx context.Context, opts tokenOptions) (string, error) {
	if opts.TokenURL != "" {
		return opts.TokenURL, nil
	}
	if opts.IssuerURL == "" {
		return "", errors.New("either --token-url or --issuer-url must be provided")
	}

	provider, err := oidc.NewProvider(ctx, opts.IssuerURL)
	if err != nil {
		return "", fmt.Errorf("failed to create OIDC provider from issuer: %w", err)
	}

	return provider.Endpoint().TokenURL, nil
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenOpts.ClientID, "client-id", "", "Client ID")
	tokenCmd.Flags().StringVar(&tokenOpts.ClientSecret, "client-secret", "", "Client Secret")
	tokenCmd.Flags().StringVar(&tokenOpts.TokenURL, "token-url", "", "Token URL")
	tokenCmd.Flags().StringVar(&tokenOpts.IssuerURL, "issuer-url", "", "Issuer URL (for OIDC discovery)")
	tokenCmd.Flags().StringSliceVar(&tokenOpts.Scopes, "scopes", []string{}, "Scopes (comma-separated)")
	tokenCmd.Flags().StringVar(&tokenOpts.Format, "format", "text", "Output format (text or json)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	_ = tokenCmd.MarkFlagRequired("client-secret")
}
