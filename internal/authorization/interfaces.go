// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/content-service/internal/openfga"
	"github.com/canonical/content-service/internal/types"
)

// AuthorizerInterface mirrors organization roles into openfga. The database
// stays the source of truth, SyncRoles repairs tuples whose write failed.
type AuthorizerInterface interface {
	ValidateModel(context.Context) error

	AssignRole(context.Context, string, string, types.Role) error
	RemoveRole(context.Context, string, string, types.Role) error
	ChangeRole(context.Context, string, string, types.Role, types.Role) error
	SyncRoles(context.Context, []*types.Member) (int, error)
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	WriteTuples(context.Context, ...openfga.Tuple) error
}
