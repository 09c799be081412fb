// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/content-service/internal/types"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
	UpsertProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	GetMemberByProfile(ctx context.Context, profileID string) (*types.Member, error)
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	AddMember(ctx context.Context, orgID, profileID string, role types.Role) (*types.Member, error)
}

// AuthorizerInterface defines the authorization operations required by the webhooks package.
// It is a subset of the internal/authorization interface.
type AuthorizerInterface interface {
	AssignRole(ctx context.Context, orgID, userID string, role types.Role) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) (*types.Organization, error)
}
