// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/content-service/internal/types"
)

type membershipLister interface {
	ListMemberships(ctx context.Context, afterID string, limit uint64) ([]*types.Member, error)
}

type roleSyncer interface {
	SyncRoles(ctx context.Context, members []*types.Member) (int, error)
}

var syncAuthzCmd = &cobra.Command{
	Use:   "sync-authz",
	Short: "Restore the openfga role tuples of every organization member",
	Long: `Walks the organization memberships stored in the database and writes the
role tuples openfga is missing, for instance after a failed write during a role change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pageSize, _ := cmd.Flags().GetUint64("page-size")

		c, err := newComponents("content-service")
		if err != nil {
			return err
		}
		defer c.Close()

		if !c.specs.AuthorizationEnabled {
			return fmt.Errorf("authorization is disabled, nothing to sync")
		}

		checked, written, err := syncMemberships(cmd.Context(), c.storage, c.authorizer, pageSize)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Checked %d memberships, restored %d tuples\n", checked, written)
		return nil
	},
}

func syncMemberships(ctx context.Context, lister membershipLister, syncer roleSyncer, pageSize uint64) (int, int, error) {
	if pageSize == 0 {
		pageSize = 100
	}

	checked, written, after := 0, 0, ""
	for {
		page, err := lister.ListMemberships(ctx, after, pageSize)
		if err != nil {
			return checked, written, err
		}
		if len(page) == 0 {
			return checked, written, nil
		}

		n, err := syncer.SyncRoles(ctx, page)
		written += n
		if err != nil {
			return checked, written, err
		}

		checked += len(page)
		after = page[len(page)-1].ID

		if uint64(len(page)) < pageSize {
			return checked, written, nil
		}
	}
}

func init() {
	rootCmd.AddCommand(syncAuthzCmd)

	syncAuthzCmd.Flags().Uint64("page-size", 100, "Memberships read per database query")
}
