// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
)

const (
	joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	joinCodeLength   = 8
	slugSuffixBytes  = 3
	maxSlugBase      = 40
)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration provisions the profile of a new identity together with its own
// organization, owned by the identity. Redelivered webhooks return the existing organization
// ID without provisioning again.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s with email %s", identityID, email)

	if identityID == "" {
		return nil, apperrors.NewValidationError("id", "identity ID is empty")
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.NewValidationError("traits.email", "email is empty")
	}

	var (
		org    *types.Organization
		exists bool
	)
	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.UpsertProfile(ctx, &types.Profile{ID: identityID, Email: email}); err != nil {
			return fmt.Errorf("failed to upsert profile: %w", err)
		}

		m, err := s.storage.GetMemberByProfile(ctx, identityID)
		if err == nil {
			exists = true
			org = &types.Organization{ID: m.OrganizationID}
			return nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		slug, err := slugFor(email)
		if err != nil {
			return err
		}
		code, err := joinCode()
		if err != nil {
			return err
		}

		org, err = s.storage.CreateOrganization(ctx, &types.Organization{
			Name:     fmt.Sprintf("%s's Org", email),
			Slug:     slug,
			JoinCode: code,
		})
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		if _, err := s.storage.AddMember(ctx, org.ID, identityID, types.RoleOwner); err != nil {
			return fmt.Errorf("failed to add owner: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if exists {
		s.logger.Infof("Identity %s already belongs to organization %s", identityID, org.ID)
		return org, nil
	}

	if err := s.authz.AssignRole(ctx, org.ID, identityID, types.RoleOwner); err != nil {
		return nil, fmt.Errorf("failed to assign organization owner in authz: %w", err)
	}

	s.logger.Infof("Successfully provisioned organization %s for user %s", org.ID, identityID)
	return org, nil
}

// slugFor derives a URL-safe slug from the local part of email plus a random suffix.
func slugFor(email string) (string, error) {
	local, _, _ := strings.Cut(strings.ToLower(email), "@")

	var b strings.Builder
	dash := false
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
		if b.Len() >= maxSlugBase {
			break
		}
	}

	base := strings.Trim(b.String(), "-")
	if base == "" {
		base = "org"
	}

	suffix := make([]byte, slugSuffixBytes)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate slug: %w", err)
	}

	return base + "-" + hex.EncodeToString(suffix), nil
}

func joinCode() (string, error) {
	b := make([]byte, joinCodeLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate join code: %w", err)
	}

	for i := range b {
		b[i] = joinCodeAlphabet[int(b[i])%len(joinCodeAlphabet)]
	}

	return string(b), nil
}
