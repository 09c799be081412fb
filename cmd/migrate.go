// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/content-service/migrations"
)

var migrateCommands = map[string]func(context.Context, *goose.Provider, int64) (*migrationReport, error){
	"up":     migrateUp,
	"down":   migrateDown,
	"redo":   migrateRedo,
	"status": migrateStatus,
	"check":  migrateCheck,
}

// migrationReport is printed as JSON with --format json, as text otherwise.
type migrationReport struct {
	Status   string                   `json:"status,omitempty"`
	Version  int64                    `json:"version"`
	Applied  []*goose.MigrationResult `json:"applied,omitempty"`
	Statuses []*goose.MigrationStatus `json:"migrations,omitempty"`
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|redo|status|check]",
	Short: "Run database migrations",
	Long: `Apply or inspect the content-service schema migrations.

Without arguments all pending migrations are applied. "down" rolls back
one migration, or every migration above the given version.`,
	Args: validateMigrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command, target := "up", int64(-1)
		if len(args) > 0 {
			command = args[0]
		}
		if len(args) > 1 {
			target, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DSN")
		}
		if dsn == "" {
			return errors.New("a DSN is required, pass --dsn or set DSN")
		}

		format, _ := cmd.Flags().GetString("format")

		return migrate(cmd.Context(), cmd.OutOrStdout(), dsn, command, format, target)
	},
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func validateMigrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	if _, ok := migrateCommands[args[0]]; !ok {
		return fmt.Errorf("invalid migrate command: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("only down accepts a target version, got %q", args)
		}
		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	return db, nil
}

func migrate(ctx context.Context, out io.Writer, dsn, command, format string, target int64) error {
	db, err := openMigrationDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	report, err := migrateCommands[command](ctx, provider, target)
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(report)
	}

	printReport(out, report)

	return nil
}

func printReport(out io.Writer, r *migrationReport) {
	for _, res := range r.Applied {
		fmt.Fprintf(out, "%-4s %s (%s)\n", res.Direction, res.Source.Path, res.Duration.Round(time.Millisecond))
	}

	if len(r.Statuses) > 0 {
		fmt.Fprintln(out, "    Applied At                  Migration")
		fmt.Fprintln(out, "    =======================================")
		for _, s := range r.Statuses {
			appliedAt := "Pending"
			if s.State == goose.StateApplied {
				appliedAt = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(out, "    %-24s -- %s\n", appliedAt, s.Source.Path)
		}
	}

	switch r.Status {
	case "pending":
		fmt.Fprintf(out, "Migrations are pending (version %d)\n", r.Version)
	case "ok":
		fmt.Fprintf(out, "Database is up to date (version %d)\n", r.Version)
	}
}

func migrateUp(ctx context.Context, p *goose.Provider, _ int64) (*migrationReport, error) {
	results, err := p.Up(ctx)
	if err != nil {
		return nil, err
	}
	return withVersion(ctx, p, &migrationReport{Applied: results})
}

func migrateDown(ctx context.Context, p *goose.Provider, target int64) (*migrationReport, error) {
	if target < 0 {
		res, err := p.Down(ctx)
		if err != nil {
			return nil, err
		}
		return withVersion(ctx, p, &migrationReport{Applied: []*goose.MigrationResult{res}})
	}

	results, err := p.DownTo(ctx, target)
	if err != nil {
		return nil, err
	}
	return withVersion(ctx, p, &migrationReport{Applied: results})
}

func migrateRedo(ctx context.Context, p *goose.Provider, _ int64) (*migrationReport, error) {
	down, err := p.Down(ctx)
	if err != nil {
		return nil, err
	}
	up, err := p.UpByOne(ctx)
	if err != nil {
		return nil, err
	}
	return withVersion(ctx, p, &migrationReport{Applied: []*goose.MigrationResult{down, up}})
}

func migrateStatus(ctx context.Context, p *goose.Provider, _ int64) (*migrationReport, error) {
	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, err
	}
	return withVersion(ctx, p, &migrationReport{Statuses: statuses})
}

// migrateCheck fails while migrations are pending, for use in readiness gates.
func migrateCheck(ctx context.Context, p *goose.Provider, _ int64) (*migrationReport, error) {
	pending, err := p.HasPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending migrations: %w", err)
	}

	r, err := withVersion(ctx, p, &migrationReport{Status: "ok"})
	if err != nil {
		return nil, err
	}
	if pending {
		r.Status = "pending"
		return r, fmt.Errorf("migrations are pending: current version %d", r.Version)
	}

	return r, nil
}

func withVersion(ctx context.Context, p *goose.Provider, r *migrationReport) (*migrationReport, error) {
	v, err := p.GetDBVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read database version: %w", err)
	}
	r.Version = v

	return r, nil
}
