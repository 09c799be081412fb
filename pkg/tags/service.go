// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tags

import (
	"context"
	"errors"
	"strings"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
)

const (
	// ConstraintSameTenant is violated when a tag and an output belong to different organizations.
	ConstraintSameTenant = "tag_same_organization"
	ConstraintUniqueName = "tag_unique_name"

	maxNameLength = 64
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Create(ctx context.Context, orgID, name string) (*types.Tag, error) {
	ctx, span := s.tracer.Start(ctx, "tags.Service.Create")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}
	if len(name) > maxNameLength {
		return nil, apperrors.NewValidationError("name", "must be at most %d characters", maxNameLength)
	}

	t, err := s.storage.CreateTag(ctx, orgID, name)
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, apperrors.NewConstraintError(ConstraintUniqueName, "tag %q already exists", name)
	}

	return t, err
}

func (s *Service) List(ctx context.Context, orgID string) ([]*types.Tag, error) {
	ctx, span := s.tracer.Start(ctx, "tags.Service.List")
	defer span.End()

	return s.storage.ListTags(ctx, orgID)
}

func (s *Service) ListForOutput(ctx context.Context, orgID, outputID string) ([]*types.Tag, error) {
	ctx, span := s.tracer.Start(ctx, "tags.Service.ListForOutput")
	defer span.End()

	o, err := s.storage.GetOutput(ctx, outputID)
	if err != nil || o.OrganizationID != orgID {
		if err == nil || errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.NewNotFound("output", outputID)
		}
		return nil, err
	}

	return s.storage.ListTagsForOutput(ctx, outputID)
}

// Attach links a tag to an output of the same organization. Attaching twice is a no-op.
func (s *Service) Attach(ctx context.Context, orgID, tagID, outputID string) error {
	ctx, span := s.tracer.Start(ctx, "tags.Service.Attach")
	defer span.End()

	err := s.storage.AttachTag(ctx, orgID, tagID, outputID)
	switch {
	case err == nil, errors.Is(err, storage.ErrDuplicateKey):
		return nil
	case errors.Is(err, storage.ErrConditionFailed):
		return s.sameTenantError(tagID, outputID, orgID)
	default:
		return err
	}
}

// Detach unlinks a tag from an output, both must belong to orgID.
func (s *Service) Detach(ctx context.Context, orgID, tagID, outputID string) error {
	ctx, span := s.tracer.Start(ctx, "tags.Service.Detach")
	defer span.End()

	t, err := s.storage.GetTag(ctx, tagID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	o, err := s.storage.GetOutput(ctx, outputID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	if t == nil || o == nil || t.OrganizationID != orgID || o.OrganizationID != orgID {
		return s.sameTenantError(tagID, outputID, orgID)
	}

	if err := s.storage.DetachTag(ctx, tagID, outputID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return apperrors.NewNotFound("output_tag", tagID+"/"+outputID)
		}
		return err
	}

	return nil
}

func (s *Service) sameTenantError(tagID, outputID, orgID string) error {
	s.logger.Warnf("rejected cross-organization tag %s on output %s for %s", tagID, outputID, orgID)
	return apperrors.NewConstraintError(ConstraintSameTenant, "tag %s and output %s must both belong to organization %s", tagID, outputID, orgID)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
