// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/content-service/internal/types"
)

type fakeMemberships []*types.Member

func (f fakeMemberships) ListMemberships(_ context.Context, afterID string, limit uint64) ([]*types.Member, error) {
	start := 0
	for i, m := range f {
		if m.ID == afterID {
			start = i + 1
		}
	}
	end := min(start+int(limit), len(f))
	return f[start:end], nil
}

type fakeSyncer struct {
	batches [][]string
	missing map[string]bool
	err     error
}

func (f *fakeSyncer) SyncRoles(_ context.Context, members []*types.Member) (int, error) {
	ids := make([]string, 0, len(members))
	written := 0
	for _, m := range members {
		ids = append(ids, m.ID)
		if f.missing[m.ID] {
			written++
		}
	}
	f.batches = append(f.batches, ids)
	return written, f.err
}

func memberships(n int) fakeMemberships {
	out := make(fakeMemberships, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &types.Member{ID: fmt.Sprintf("m-%d", i), OrganizationID: "org-1", ProfileID: fmt.Sprintf("p-%d", i), Role: types.RoleMember})
	}
	return out
}

func TestSyncMemberships(t *testing.T) {
	t.Run("pages through every membership", func(t *testing.T) {
		syncer := &fakeSyncer{missing: map[string]bool{"m-2": true, "m-5": true}}

		checked, written, err := syncMemberships(context.Background(), memberships(5), syncer, 2)

		require.NoError(t, err)
		assert.Equal(t, 5, checked)
		assert.Equal(t, 2, written)
		assert.Equal(t, [][]string{{"m-1", "m-2"}, {"m-3", "m-4"}, {"m-5"}}, syncer.batches)
	})

	t.Run("exact multiple of the page stops on the empty page", func(t *testing.T) {
		syncer := new(fakeSyncer)

		checked, _, err := syncMemberships(context.Background(), memberships(4), syncer, 2)

		require.NoError(t, err)
		assert.Equal(t, 4, checked)
		assert.Len(t, syncer.batches, 2)
	})

	t.Run("sync error stops the walk", func(t *testing.T) {
		syncer := &fakeSyncer{err: errors.New("openfga unavailable")}

		_, _, err := syncMemberships(context.Background(), memberships(5), syncer, 2)

		assert.Error(t, err)
		assert.Len(t, syncer.batches, 1)
	})
}
