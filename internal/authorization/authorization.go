// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/openfga"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
)

const (
	DefaultModelVersion = "v0"

	// openfga accepts at most 100 tuples per write
	syncBatchSize = 100
)

var ErrInvalidAuthModel = errors.New("invalid authorization model schema")

type Authorizer struct {
	client       AuthzClientInterface
	modelVersion string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ValidateModel fails when the model stored in openfga differs from the compiled one.
func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	model, err := NewAuthorizationModelProvider(a.modelVersion).Model()
	if err != nil {
		return err
	}

	eq, err := a.client.CompareModel(ctx, *model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignRole(ctx context.Context, orgID, userID string, role types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignRole")
	defer span.End()

	t := roleTuple(orgID, userID, role)
	return a.client.WriteTuple(ctx, t.User, t.Relation, t.Object)
}

func (a *Authorizer) RemoveRole(ctx context.Context, orgID, userID string, role types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveRole")
	defer span.End()

	t := roleTuple(orgID, userID, role)
	return a.client.DeleteTuple(ctx, t.User, t.Relation, t.Object)
}

// ChangeRole writes the new role tuple before removing the old one so the user never loses access in between.
func (a *Authorizer) ChangeRole(ctx context.Context, orgID, userID string, from, to types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ChangeRole")
	defer span.End()

	if from == to {
		return nil
	}

	granted, revoked := roleTuple(orgID, userID, to), roleTuple(orgID, userID, from)

	if err := a.client.WriteTuple(ctx, granted.User, granted.Relation, granted.Object); err != nil {
		return err
	}

	return a.client.DeleteTuple(ctx, revoked.User, revoked.Relation, revoked.Object)
}

// SyncRoles writes the role tuple of every member openfga does not grant yet
// and returns how many were written.
func (a *Authorizer) SyncRoles(ctx context.Context, members []*types.Member) (int, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.SyncRoles")
	defer span.End()

	missing := make([]openfga.Tuple, 0)
	for _, m := range members {
		t := roleTuple(m.OrganizationID, m.ProfileID, m.Role)

		ok, err := a.client.Check(ctx, t.User, t.Relation, t.Object)
		if err != nil {
			return 0, fmt.Errorf("failed to check role of %s in %s: %w", m.ProfileID, m.OrganizationID, err)
		}
		if !ok {
			missing = append(missing, *t)
		}
	}

	written := 0
	for start := 0; start < len(missing); start += syncBatchSize {
		batch := missing[start:min(start+syncBatchSize, len(missing))]
		if err := a.client.WriteTuples(ctx, batch...); err != nil {
			return written, fmt.Errorf("failed to write role tuples: %w", err)
		}
		written += len(batch)
	}

	if written > 0 {
		a.logger.Infof("restored %d role tuples", written)
	}

	return written, nil
}

func roleTuple(orgID, userID string, role types.Role) *openfga.Tuple {
	return openfga.NewTuple(UserTuple(userID), RoleRelation(role), OrganizationTuple(orgID))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)
	a.client = client
	a.modelVersion = DefaultModelVersion

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
