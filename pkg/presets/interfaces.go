// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package presets

import (
	"context"

	"github.com/canonical/content-service/internal/types"
)

type StorageInterface interface {
	CreateVoice(ctx context.Context, v *types.Voice) (*types.Voice, error)
	GetVoice(ctx context.Context, id string) (*types.Voice, error)
	ListVoices(ctx context.Context, orgID string) ([]*types.Voice, error)
	CreateCharacter(ctx context.Context, c *types.Character) (*types.Character, error)
	ListCharacters(ctx context.Context, orgID string) ([]*types.Character, error)
}

type ServiceInterface interface {
	CreateVoice(ctx context.Context, orgID, name, vendorVoiceID string) (*types.Voice, error)
	ListVoices(ctx context.Context, orgID string) ([]*types.Voice, error)
	CreateCharacter(ctx context.Context, orgID, name, avatarID, voiceID string) (*types.Character, error)
	ListCharacters(ctx context.Context, orgID string) ([]*types.Character, error)
}
