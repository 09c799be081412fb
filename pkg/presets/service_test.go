// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package presets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/logging"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/tracing"
	"github.com/canonical/content-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package presets -destination ./mock_presets.go -source=./interfaces.go

func newService(t *testing.T) (*Service, *MockStorageInterface) {
	store := NewMockStorageInterface(gomock.NewController(t))
	logger := logging.NewNoopLogger()

	return NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), store
}

func TestServiceCreateCharacter(t *testing.T) {
	tests := []struct {
		name     string
		avatarID string
		voice    *types.Voice
		voiceErr error
		create   bool
		wantErr  error
	}{
		{
			name:     "voice of the same organization",
			avatarID: "avatar-7",
			voice:    &types.Voice{ID: "voice-1", OrganizationID: "org-1"},
			create:   true,
		},
		{
			name:     "voice of another organization",
			avatarID: "avatar-7",
			voice:    &types.Voice{ID: "voice-1", OrganizationID: "org-2"},
			wantErr:  apperrors.ErrConstraint,
		},
		{
			name:     "unknown voice",
			avatarID: "avatar-7",
			voiceErr: storage.ErrNotFound,
			wantErr:  apperrors.ErrConstraint,
		},
		{
			name:    "missing avatar",
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, store := newService(t)
			if test.avatarID != "" {
				store.EXPECT().GetVoice(gomock.Any(), "voice-1").Return(test.voice, test.voiceErr)
			}
			if test.create {
				store.EXPECT().CreateCharacter(gomock.Any(), &types.Character{
					OrganizationID: "org-1",
					Name:           "Ada",
					AvatarID:       "avatar-7",
					VoiceID:        "voice-1",
				}).Return(&types.Character{ID: "char-1", OrganizationID: "org-1", Name: "Ada"}, nil)
			}

			c, err := s.CreateCharacter(context.Background(), "org-1", " Ada ", test.avatarID, "voice-1")

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "char-1", c.ID)
		})
	}
}

func TestServiceCreateVoice(t *testing.T) {
	s, store := newService(t)
	store.EXPECT().CreateVoice(gomock.Any(), &types.Voice{OrganizationID: "org-1", Name: "Narrator", VendorVoiceID: "eleven-1"}).
		Return(&types.Voice{ID: "voice-1"}, nil)

	v, err := s.CreateVoice(context.Background(), "org-1", "Narrator", " eleven-1")

	require.NoError(t, err)
	assert.Equal(t, "voice-1", v.ID)

	_, err = s.CreateVoice(context.Background(), "org-1", "Narrator", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestServiceListScopesByOrganization(t *testing.T) {
	s, store := newService(t)
	store.EXPECT().ListVoices(gomock.Any(), "org-1").Return([]*types.Voice{{ID: "voice-1"}}, nil)
	store.EXPECT().ListCharacters(gomock.Any(), "org-1").Return([]*types.Character{{ID: "char-1"}}, nil)

	voices, err := s.ListVoices(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Len(t, voices, 1)

	characters, err := s.ListCharacters(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Len(t, characters, 1)
}
