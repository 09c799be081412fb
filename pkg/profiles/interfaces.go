// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"

	"github.com/canonical/content-service/internal/kratos"
	"github.com/canonical/content-service/internal/types"
)

type StorageInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	UpsertProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
}

type IdentityInterface interface {
	GetTraits(ctx context.Context, id string) (*kratos.Traits, error)
}

type ServiceInterface interface {
	Ensure(ctx context.Context, userID string) (*types.Profile, error)
}
