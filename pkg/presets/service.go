// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package presets

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

// ConstraintCharacterVoice is violated when a character uses a voice of another organization.
const ConstraintCharacterVoice = "character_voice_same_organization"

// Service manages the voices and avatar characters an organization renders media with.
type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateVoice(ctx context.Context, orgID, name, vendorVoiceID string) (*types.Voice, error) {
	ctx, span := s.tracer.Start(ctx, "presets.Service.CreateVoice")
	defer span.End()

	v := &types.Voice{
		OrganizationID: orgID,
		Name:           strings.TrimSpace(name),
		VendorVoiceID:  strings.TrimSpace(vendorVoiceID),
	}

	if v.Name == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}
	if v.VendorVoiceID == "" {
		return nil, apperrors.NewValidationError("vendor_voice_id", "must not be empty")
	}

	return s.storage.CreateVoice(ctx, v)
}

func (s *Service) ListVoices(ctx context.Context, orgID string) ([]*types.Voice, error) {
	ctx, span := s.tracer.Start(ctx, "presets.Service.ListVoices")
	defer span.End()

	return s.storage.ListVoices(ctx, orgID)
}

// CreateCharacter pairs an avatar with a voice of the same organization.
func (s *Service) CreateCharacter(ctx context.Context, orgID, name, avatarID, voiceID string) (*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "presets.Service.CreateCharacter")
	defer span.End()

	c := &types.Character{
		OrganizationID: orgID,
		Name:           strings.TrimSpace(name),
		AvatarID:       strings.TrimSpace(avatarID),
		VoiceID:        voiceID,
	}

	if c.Name == "" {
		return nil, apperrors.NewValidationError("name", "must not be empty")
	}
	if c.AvatarID == "" {
		return nil, apperrors.NewValidationError("avatar_id", "must not be empty")
	}

	v, err := s.storage.GetVoice(ctx, voiceID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if v == nil || v.OrganizationID != orgID {
		s.logger.Warnf("rejected character %q with voice %s outside organization %s", c.Name, voiceID, orgID)
		return nil, apperrors.NewConstraintError(ConstraintCharacterVoice, "voice %s does not belong to organization %s", voiceID, orgID)
	}

	return s.storage.CreateCharacter(ctx, c)
}

func (s *Service) ListCharacters(ctx context.Context, orgID string) ([]*types.Character, error) {
	ctx, span := s.tracer.Start(ctx, "presets.Service.ListCharacters")
	defer span.End()

	return s.storage.ListCharacters(ctx, orgID)
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
