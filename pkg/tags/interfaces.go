// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tags

import (
	"context"

	"github.com/canonical/content-service/internal/types"
)

type StorageInterface interface {
	CreateTag(ctx context.Context, orgID, name string) (*types.Tag, error)
	GetTag(ctx context.Context, id string) (*types.Tag, error)
	GetOutput(ctx context.Context, id string) (*types.Output, error)
	AttachTag(ctx context.Context, orgID, tagID, outputID string) error
	DetachTag(ctx context.Context, tagID, outputID string) error
	ListTags(ctx context.Context, orgID string) ([]*types.Tag, error)
	ListTagsForOutput(ctx context.Context, outputID string) ([]*types.Tag, error)
}

type ServiceInterface interface {
	Create(ctx context.Context, orgID, name string) (*types.Tag, error)
	List(ctx context.Context, orgID string) ([]*types.Tag, error)
	ListForOutput(ctx context.Context, orgID, outputID string) ([]*types.Tag, error)
	Attach(ctx context.Context, orgID, tagID, outputID string) error
	Detach(ctx context.Context, orgID, tagID, outputID string) error
}
