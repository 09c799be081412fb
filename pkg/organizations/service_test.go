// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package organizations -destination ./mock_organizations.go -source=./interfaces.go

const orgID = "org-1"

type fixture struct {
	storage *MockStorageInterface
	authz   *MockAuthzInterface
	service *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
	}

	logger := logging.NewNoopLogger()
	f.service = NewService(f.storage, f.authz, 0, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	return f
}

// members registers the membership lookups of the given profiles.
func (f *fixture) members(members ...*types.Member) {
	for _, m := range members {
		f.storage.EXPECT().GetMemberByProfile(gomock.Any(), m.ProfileID).Return(m, nil).AnyTimes()
	}
}

func member(profileID string, role types.Role) *types.Member {
	return &types.Member{ID: "m-" + profileID, OrganizationID: orgID, ProfileID: profileID, Role: role}
}

func TestServiceChangeRole(t *testing.T) {
	tests := []struct {
		name    string
		actor   *types.Member
		target  *types.Member
		owners  []string
		role    types.Role
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name:   "admin promotes member to admin",
			actor:  member("alice", types.RoleAdmin),
			target: member("bob", types.RoleMember),
			owners: []string{"carol"},
			role:   types.RoleAdmin,
			setup: func(f *fixture) {
				f.storage.EXPECT().UpdateMemberRole(gomock.Any(), orgID, "bob", types.RoleAdmin).Return(nil)
				f.authz.EXPECT().ChangeRole(gomock.Any(), orgID, "bob", types.RoleMember, types.RoleAdmin).Return(nil)
			},
		},
		{
			name:    "admin cannot grant owner",
			actor:   member("alice", types.RoleAdmin),
			target:  member("bob", types.RoleMember),
			owners:  []string{"carol"},
			role:    types.RoleOwner,
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:    "last owner cannot be demoted",
			actor:   member("alice", types.RoleOwner),
			target:  member("alice", types.RoleOwner),
			owners:  []string{"alice"},
			role:    types.RoleAdmin,
			wantErr: apperrors.ErrConstraint,
		},
		{
			name:   "owner demoted while another owner remains",
			actor:  member("alice", types.RoleOwner),
			target: member("bob", types.RoleOwner),
			owners: []string{"alice", "bob"},
			role:   types.RoleMember,
			setup: func(f *fixture) {
				f.storage.EXPECT().UpdateMemberRole(gomock.Any(), orgID, "bob", types.RoleMember).Return(nil)
				f.authz.EXPECT().ChangeRole(gomock.Any(), orgID, "bob", types.RoleOwner, types.RoleMember).Return(nil)
			},
		},
		{
			name:    "member cannot manage roles",
			actor:   member("alice", types.RoleMember),
			target:  member("bob", types.RoleMember),
			role:    types.RoleAdmin,
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:   "authz failure does not undo the change",
			actor:  member("alice", types.RoleOwner),
			target: member("bob", types.RoleMember),
			owners: []string{"alice"},
			role:   types.RoleAdmin,
			setup: func(f *fixture) {
				f.storage.EXPECT().UpdateMemberRole(gomock.Any(), orgID, "bob", types.RoleAdmin).Return(nil)
				f.authz.EXPECT().ChangeRole(gomock.Any(), orgID, "bob", types.RoleMember, types.RoleAdmin).Return(errors.New("fga down"))
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			f.members(test.actor, test.target)
			if test.actor.Role.CanManage() {
				f.storage.EXPECT().LockOwners(gomock.Any(), orgID).Return(test.owners, nil)
			}
			if test.setup != nil {
				test.setup(f)
			}

			err := f.service.ChangeRole(context.Background(), test.actor.ProfileID, orgID, test.target.ProfileID, test.role)

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServiceChangeRoleRejectsUnknownRole(t *testing.T) {
	f := newFixture(t)

	err := f.service.ChangeRole(context.Background(), "alice", orgID, "bob", types.Role("SUPERUSER"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestServiceRemoveMember(t *testing.T) {
	tests := []struct {
		name    string
		actor   *types.Member
		target  *types.Member
		owners  []string
		remove  bool
		wantErr error
	}{
		{
			name:   "member leaves",
			actor:  member("bob", types.RoleMember),
			target: member("bob", types.RoleMember),
			owners: []string{"alice"},
			remove: true,
		},
		{
			name:    "last owner cannot leave",
			actor:   member("alice", types.RoleOwner),
			target:  member("alice", types.RoleOwner),
			owners:  []string{"alice"},
			wantErr: apperrors.ErrConstraint,
		},
		{
			name:    "admin cannot remove an owner",
			actor:   member("bob", types.RoleAdmin),
			target:  member("alice", types.RoleOwner),
			owners:  []string{"alice", "carol"},
			wantErr: apperrors.ErrForbidden,
		},
		{
			name:   "owner removes a co-owner",
			actor:  member("alice", types.RoleOwner),
			target: member("carol", types.RoleOwner),
			owners: []string{"alice", "carol"},
			remove: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			f.members(test.actor, test.target)
			f.storage.EXPECT().LockOwners(gomock.Any(), orgID).Return(test.owners, nil)
			if test.remove {
				f.storage.EXPECT().RemoveMember(gomock.Any(), orgID, test.target.ProfileID).Return(nil)
				f.authz.EXPECT().RemoveRole(gomock.Any(), orgID, test.target.ProfileID, test.target.Role).Return(nil)
			}

			err := f.service.RemoveMember(context.Background(), test.actor.ProfileID, orgID, test.target.ProfileID)

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServiceRemoveMemberOfAnotherOrganization(t *testing.T) {
	f := newFixture(t)

	outsider := member("mallory", types.RoleOwner)
	outsider.OrganizationID = "org-2"
	f.members(outsider)

	err := f.service.RemoveMember(context.Background(), "mallory", orgID, "bob")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestServiceRequestToJoin(t *testing.T) {
	org := &types.Organization{ID: orgID, JoinCode: "TIDES1"}

	tests := []struct {
		name    string
		target  JoinTarget
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name:   "join code creates a pending request",
			target: JoinTarget{JoinCode: " TIDES1 "},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetOrganizationByJoinCode(gomock.Any(), "TIDES1").Return(org, nil)
				f.storage.EXPECT().GetMemberByProfile(gomock.Any(), "dave").Return(nil, storage.ErrNotFound)
				f.storage.EXPECT().CreateJoinRequest(gomock.Any(), &types.JoinRequest{OrganizationID: orgID, ProfileID: "dave"}).Return(
					&types.JoinRequest{ID: "jr-1", OrganizationID: orgID, ProfileID: "dave", Status: types.JoinRequestPending}, nil,
				)
			},
		},
		{
			name:   "profile with an organization is rejected",
			target: JoinTarget{OrganizationID: orgID},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetOrganization(gomock.Any(), orgID).Return(org, nil)
				f.storage.EXPECT().GetMemberByProfile(gomock.Any(), "dave").Return(&types.Member{OrganizationID: "org-2", ProfileID: "dave"}, nil)
			},
			wantErr: apperrors.ErrConstraint,
		},
		{
			name:   "duplicate pending request is rejected",
			target: JoinTarget{OrganizationID: orgID},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetOrganization(gomock.Any(), orgID).Return(org, nil)
				f.storage.EXPECT().GetMemberByProfile(gomock.Any(), "dave").Return(nil, storage.ErrNotFound)
				f.storage.EXPECT().CreateJoinRequest(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			wantErr: apperrors.ErrConstraint,
		},
		{
			name:   "unknown join code",
			target: JoinTarget{JoinCode: "NOPE"},
			setup: func(f *fixture) {
				f.storage.EXPECT().GetOrganizationByJoinCode(gomock.Any(), "NOPE").Return(nil, storage.ErrNotFound)
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:    "missing target",
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			if test.setup != nil {
				test.setup(f)
			}

			jr, err := f.service.RequestToJoin(context.Background(), "dave", test.target)

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.JoinRequestPending, jr.Status)
		})
	}
}

func TestServiceRedeemInvite(t *testing.T) {
	email := "dave@example.com"

	tests := []struct {
		name    string
		invite  *types.Invite
		email   string
		create  bool
		wantErr error
	}{
		{
			name:   "valid invite",
			invite: &types.Invite{ID: "inv-1", OrganizationID: orgID, Email: &email, ExpiresAt: time.Now().Add(time.Hour)},
			email:  "Dave@Example.com",
			create: true,
		},
		{
			name:    "expired invite",
			invite:  &types.Invite{ID: "inv-1", OrganizationID: orgID, ExpiresAt: time.Now().Add(-time.Minute)},
			email:   email,
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "invite for another email",
			invite:  &types.Invite{ID: "inv-1", OrganizationID: orgID, Email: &email, ExpiresAt: time.Now().Add(time.Hour)},
			email:   "eve@example.com",
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			f.storage.EXPECT().GetInviteByToken(gomock.Any(), "tok").Return(test.invite, nil)
			if test.create {
				f.storage.EXPECT().GetMemberByProfile(gomock.Any(), "dave").Return(nil, storage.ErrNotFound)
				f.storage.EXPECT().CreateJoinRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, jr *types.JoinRequest) (*types.JoinRequest, error) {
						require.NotNil(t, jr.InviteID)
						assert.Equal(t, "inv-1", *jr.InviteID)
						jr.Status = types.JoinRequestPending
						return jr, nil
					},
				)
			}

			_, err := f.service.RedeemInvite(context.Background(), "dave", test.email, "tok")

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestServiceApproveJoinRequest(t *testing.T) {
	pending := &types.JoinRequest{ID: "jr-1", OrganizationID: orgID, ProfileID: "dave", Status: types.JoinRequestPending}
	approved := &types.JoinRequest{ID: "jr-1", OrganizationID: orgID, ProfileID: "dave", Status: types.JoinRequestApproved}

	tests := []struct {
		name    string
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name: "pending request becomes a membership",
			setup: func(f *fixture) {
				f.storage.EXPECT().GetJoinRequest(gomock.Any(), "jr-1").Return(pending, nil)
				f.storage.EXPECT().DecideJoinRequest(gomock.Any(), "jr-1", types.JoinRequestApproved, "alice").Return(approved, nil)
				f.storage.EXPECT().AddMember(gomock.Any(), orgID, "dave", types.RoleMember).Return(member("dave", types.RoleMember), nil)
				f.authz.EXPECT().AssignRole(gomock.Any(), orgID, "dave", types.RoleMember).Return(nil)
			},
		},
		{
			name: "decided request is terminal",
			setup: func(f *fixture) {
				f.storage.EXPECT().GetJoinRequest(gomock.Any(), "jr-1").Return(approved, nil)
				f.storage.EXPECT().DecideJoinRequest(gomock.Any(), "jr-1", types.JoinRequestApproved, "alice").Return(nil, storage.ErrConditionFailed)
			},
			wantErr: apperrors.ErrInvalidState,
		},
		{
			name: "request of another organization is hidden",
			setup: func(f *fixture) {
				other := *pending
				other.OrganizationID = "org-2"
				f.storage.EXPECT().GetJoinRequest(gomock.Any(), "jr-1").Return(&other, nil)
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name: "requester joined elsewhere meanwhile",
			setup: func(f *fixture) {
				f.storage.EXPECT().GetJoinRequest(gomock.Any(), "jr-1").Return(pending, nil)
				f.storage.EXPECT().DecideJoinRequest(gomock.Any(), "jr-1", types.JoinRequestApproved, "alice").Return(approved, nil)
				f.storage.EXPECT().AddMember(gomock.Any(), orgID, "dave", types.RoleMember).Return(nil, storage.ErrDuplicateKey)
			},
			wantErr: apperrors.ErrConstraint,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture(t)
			f.members(member("alice", types.RoleAdmin))
			test.setup(f)

			jr, err := f.service.ApproveJoinRequest(context.Background(), "alice", orgID, "jr-1")

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, types.JoinRequestApproved, jr.Status)
		})
	}
}

func TestServiceDenyJoinRequest(t *testing.T) {
	f := newFixture(t)
	f.members(member("alice", types.RoleOwner))

	pending := &types.JoinRequest{ID: "jr-1", OrganizationID: orgID, ProfileID: "dave", Status: types.JoinRequestPending}
	f.storage.EXPECT().GetJoinRequest(gomock.Any(), "jr-1").Return(pending, nil)
	f.storage.EXPECT().DecideJoinRequest(gomock.Any(), "jr-1", types.JoinRequestDenied, "alice").Return(
		&types.JoinRequest{ID: "jr-1", OrganizationID: orgID, ProfileID: "dave", Status: types.JoinRequestDenied}, nil,
	)

	jr, err := f.service.DenyJoinRequest(context.Background(), "alice", orgID, "jr-1")

	require.NoError(t, err)
	assert.Equal(t, types.JoinRequestDenied, jr.Status)
}

func TestServiceCreateInvite(t *testing.T) {
	f := newFixture(t)
	f.members(member("alice", types.RoleAdmin))

	f.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv *types.Invite) (*types.Invite, error) {
			assert.Equal(t, orgID, inv.OrganizationID)
			assert.Equal(t, "alice", inv.CreatedBy)
			require.NotNil(t, inv.Email)
			assert.Equal(t, "dave@example.com", *inv.Email)
			assert.Len(t, inv.Token, 32)
			assert.WithinDuration(t, time.Now().Add(defaultInvitationLifetime), inv.ExpiresAt, time.Minute)
			return inv, nil
		},
	)

	_, err := f.service.CreateInvite(context.Background(), "alice", orgID, " dave@example.com ", 0)

	require.NoError(t, err)
}

func TestServiceCreateInviteRequiresManager(t *testing.T) {
	f := newFixture(t)
	f.members(member("bob", types.RoleMember))

	_, err := f.service.CreateInvite(context.Background(), "bob", orgID, "", time.Hour)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
