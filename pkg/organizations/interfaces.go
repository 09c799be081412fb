// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"time"

	"github.com/canonical/content-service/internal/types"
)

type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error

	GetOrganization(ctx context.Context, id string) (*types.Organization, error)
	GetOrganizationByJoinCode(ctx context.Context, code string) (*types.Organization, error)

	GetMemberByProfile(ctx context.Context, profileID string) (*types.Member, error)
	ListMembers(ctx context.Context, orgID string) ([]*types.Member, error)
	LockOwners(ctx context.Context, orgID string) ([]string, error)
	AddMember(ctx context.Context, orgID, profileID string, role types.Role) (*types.Member, error)
	UpdateMemberRole(ctx context.Context, orgID, profileID string, role types.Role) error
	RemoveMember(ctx context.Context, orgID, profileID string) error

	CreateJoinRequest(ctx context.Context, jr *types.JoinRequest) (*types.JoinRequest, error)
	GetJoinRequest(ctx context.Context, id string) (*types.JoinRequest, error)
	ListJoinRequests(ctx context.Context, orgID string, status types.JoinRequestStatus) ([]*types.JoinRequest, error)
	DecideJoinRequest(ctx context.Context, id string, status types.JoinRequestStatus, decidedBy string) (*types.JoinRequest, error)

	CreateInvite(ctx context.Context, inv *types.Invite) (*types.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invite, error)
}

// AuthzInterface mirrors membership roles into the relationship store.
type AuthzInterface interface {
	AssignRole(ctx context.Context, orgID, userID string, role types.Role) error
	RemoveRole(ctx context.Context, orgID, userID string, role types.Role) error
	ChangeRole(ctx context.Context, orgID, userID string, from, to types.Role) error
}

type ServiceInterface interface {
	Get(ctx context.Context, orgID string) (*types.Organization, error)
	Membership(ctx context.Context, profileID string) (*types.Member, error)
	ListMembers(ctx context.Context, actorID, orgID string) ([]*types.Member, error)
	ChangeRole(ctx context.Context, actorID, orgID, profileID string, role types.Role) error
	RemoveMember(ctx context.Context, actorID, orgID, profileID string) error

	RequestToJoin(ctx context.Context, profileID string, target JoinTarget) (*types.JoinRequest, error)
	RedeemInvite(ctx context.Context, profileID, email, token string) (*types.JoinRequest, error)
	ListJoinRequests(ctx context.Context, actorID, orgID string, status types.JoinRequestStatus) ([]*types.JoinRequest, error)
	ApproveJoinRequest(ctx context.Context, actorID, orgID, requestID string) (*types.JoinRequest, error)
	DenyJoinRequest(ctx context.Context, actorID, orgID, requestID string) (*types.JoinRequest, error)

	CreateInvite(ctx context.Context, actorID, orgID, email string, ttl time.Duration) (*types.Invite, error)
}
