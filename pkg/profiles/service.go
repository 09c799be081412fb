// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package profiles

import (
	"context"
	"errors"

	"github.com/canonical/content-service/internal/kratos"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/authentication"
)

type Service struct {
	storage  StorageInterface
	identity IdentityInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Ensure returns the profile of userID, creating it from the identity traits on first use.
// Without traits the email of the token principal is used, when there is one.
func (s *Service) Ensure(ctx context.Context, userID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "profiles.Service.Ensure")
	defer span.End()

	p, err := s.storage.GetProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	profile := &types.Profile{ID: userID}

	traits, err := s.identity.GetTraits(ctx, userID)
	switch {
	case err == nil:
		profile.Email = traits.Email
		profile.FullName = traits.FullName
	case errors.Is(err, kratos.ErrIdentityNotFound):
		s.logger.Warnf("identity %s not found, creating profile without traits", userID)
	default:
		s.logger.Errorf("failed to fetch traits of identity %s: %v", userID, err)
	}

	if principal, ok := authentication.PrincipalFromContext(ctx); ok && profile.Email == "" && principal.UserID == userID {
		profile.Email = principal.Email
	}

	p, err = s.storage.UpsertProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("created profile for identity %s", userID)

	return p, nil
}

func NewService(storage StorageInterface, identity IdentityInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.identity = identity

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
