// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/apperrors"
	"github.com/canonical/content-service/internal/monitoring"
	"github.com/canonical/content-service/internal/storage"
	"github.com/canonical/content-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*-[0-9a-f]{6}$`)
	joinCodePattern = regexp.MustCompile(`^[A-HJ-NP-Z2-9]{8}$`)

	errAuthz = errors.New("authz error")
)

func TestService_HandleRegistration(t *testing.T) {
	identityID := "identity-123"
	email := "jane.doe@example.com"
	org := &types.Organization{ID: "org-123", Name: "jane.doe@example.com's Org"}

	testCases := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(*MockStorageInterface, *MockAuthorizerInterface, *MockLoggerInterface)
		expectedOrg string
		expectedErr error
	}{
		{
			name:       "success",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().UpsertProfile(gomock.Any(), &types.Profile{ID: identityID, Email: email}).Return(&types.Profile{ID: identityID}, nil)
				mockStorage.EXPECT().GetMemberByProfile(gomock.Any(), identityID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o *types.Organization) (*types.Organization, error) {
						if o.Name != "jane.doe@example.com's Org" {
							return nil, errors.New("wrong organization name")
						}
						if !slugPattern.MatchString(o.Slug) || o.Slug[:9] != "jane-doe-" {
							return nil, errors.New("unexpected slug " + o.Slug)
						}
						if !joinCodePattern.MatchString(o.JoinCode) {
							return nil, errors.New("unexpected join code " + o.JoinCode)
						}
						return org, nil
					})
				mockStorage.EXPECT().AddMember(gomock.Any(), org.ID, identityID, types.RoleOwner).Return(&types.Member{ID: "member-id"}, nil)
				mockAuthz.EXPECT().AssignRole(gomock.Any(), org.ID, identityID, types.RoleOwner).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedOrg: org.ID,
		},
		{
			name:       "success - already provisioned",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(&types.Profile{ID: identityID}, nil)
				mockStorage.EXPECT().GetMemberByProfile(gomock.Any(), identityID).Return(&types.Member{OrganizationID: "org-9"}, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedOrg: "org-9",
		},
		{
			name:       "error - empty identity id",
			identityID: "",
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:       "error - empty email",
			identityID: identityID,
			email:      " ",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: apperrors.ErrValidation,
		},
		{
			name:       "error - failed to add owner",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(&types.Profile{ID: identityID}, nil)
				mockStorage.EXPECT().GetMemberByProfile(gomock.Any(), identityID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(org, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), org.ID, identityID, types.RoleOwner).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
		{
			name:       "error - failed to assign authz",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthorizerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(&types.Profile{ID: identityID}, nil)
				mockStorage.EXPECT().GetMemberByProfile(gomock.Any(), identityID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(org, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), org.ID, identityID, types.RoleOwner).Return(&types.Member{ID: "member-id"}, nil)
				mockAuthz.EXPECT().AssignRole(gomock.Any(), org.ID, identityID, types.RoleOwner).Return(errAuthz)
			},
			expectedErr: errAuthz,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			s := NewService(mockStorage, mockAuthz, mockTracer, monitoring.NewNoopMonitor("test", mockLogger), mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, fn func(context.Context) error) error {
					return fn(ctx)
				},
			).AnyTimes()
			tc.setupMocks(mockStorage, mockAuthz, mockLogger)

			got, err := s.HandleRegistration(context.Background(), tc.identityID, tc.email)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != tc.expectedOrg {
				t.Errorf("expected organization %s, got %s", tc.expectedOrg, got.ID)
			}
		})
	}
}

func TestSlugFor(t *testing.T) {
	testCases := []struct {
		email  string
		prefix string
	}{
		{email: "Jane.Doe@example.com", prefix: "jane-doe-"},
		{email: "a+b__c@example.com", prefix: "a-b-c-"},
		{email: "...@example.com", prefix: "org-"},
	}

	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			slug, err := slugFor(tc.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slugPattern.MatchString(slug) {
				t.Errorf("slug %q is not URL safe", slug)
			}
			if len(slug) < len(tc.prefix) || slug[:len(tc.prefix)] != tc.prefix {
				t.Errorf("expected slug with prefix %q, got %q", tc.prefix, slug)
			}
		})
	}
}
