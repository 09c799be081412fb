// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/content-service/internal/openfga"
	"github.com/canonical/content-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

type authzMocks struct {
	client  *MockAuthzClientInterface
	tracer  *MockTracingInterface
	monitor *MockMonitorInterface
	logger  *MockLoggerInterface
}

func newAuthorizer(ctrl *gomock.Controller) (*Authorizer, authzMocks) {
	m := authzMocks{
		client:  NewMockAuthzClientInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	return NewAuthorizer(m.client, m.tracer, m.monitor, m.logger), m
}

func expectSpan(m authzMocks, names ...string) {
	for _, name := range names {
		m.tracer.EXPECT().Start(gomock.Any(), name).
			Return(context.Background(), trace.SpanFromContext(context.Background()))
	}
}

func TestAuthorizer_ValidateModel(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr error
	}{
		{
			name: "success - model matches",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "error - model differs",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrInvalidAuthModel,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, errors.New("client error"))
			},
			expectedErr: errors.New("client error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, m := newAuthorizer(ctrl)

			expectSpan(m, "authorization.Authorizer.ValidateModel")
			tc.setupMocks(m.client)

			err := a.ValidateModel(context.Background())

			if tc.expectedErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.expectedErr.Error() {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_AssignRole(t *testing.T) {
	orgID := "org-1"
	userID := "user-1"

	testCases := []struct {
		name        string
		role        types.Role
		relation    string
		writeErr    error
		expectedErr bool
	}{
		{name: "owner", role: types.RoleOwner, relation: OWNER_RELATION},
		{name: "admin", role: types.RoleAdmin, relation: ADMIN_RELATION},
		{name: "member", role: types.RoleMember, relation: MEMBER_RELATION},
		{name: "write error", role: types.RoleMember, relation: MEMBER_RELATION, writeErr: errors.New("write error"), expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, m := newAuthorizer(ctrl)

			expectSpan(m, "authorization.Authorizer.AssignRole")
			m.client.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), tc.relation, OrganizationTuple(orgID)).Return(tc.writeErr)

			err := a.AssignRole(context.Background(), orgID, userID, tc.role)

			if tc.expectedErr != (err != nil) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_ChangeRole(t *testing.T) {
	orgID := "org-1"
	userID := "user-1"

	t.Run("promotes then revokes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, m := newAuthorizer(ctrl)
		expectSpan(m, "authorization.Authorizer.ChangeRole")

		gomock.InOrder(
			m.client.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), ADMIN_RELATION, OrganizationTuple(orgID)).Return(nil),
			m.client.EXPECT().DeleteTuple(gomock.Any(), UserTuple(userID), MEMBER_RELATION, OrganizationTuple(orgID)).Return(nil),
		)

		if err := a.ChangeRole(context.Background(), orgID, userID, types.RoleMember, types.RoleAdmin); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, m := newAuthorizer(ctrl)
		expectSpan(m, "authorization.Authorizer.ChangeRole")

		if err := a.ChangeRole(context.Background(), orgID, userID, types.RoleAdmin, types.RoleAdmin); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("write failure keeps old role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, m := newAuthorizer(ctrl)
		expectSpan(m, "authorization.Authorizer.ChangeRole")

		m.client.EXPECT().WriteTuple(gomock.Any(), UserTuple(userID), OWNER_RELATION, OrganizationTuple(orgID)).Return(errors.New("write error"))

		if err := a.ChangeRole(context.Background(), orgID, userID, types.RoleAdmin, types.RoleOwner); err == nil {
			t.Error("expected error but got none")
		}
	})
}

func TestAuthorizer_SyncRoles(t *testing.T) {
	members := []*types.Member{
		{OrganizationID: "org-1", ProfileID: "owner-1", Role: types.RoleOwner},
		{OrganizationID: "org-1", ProfileID: "member-1", Role: types.RoleMember},
		{OrganizationID: "org-2", ProfileID: "admin-1", Role: types.RoleAdmin},
	}

	t.Run("writes only missing tuples", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, m := newAuthorizer(ctrl)
		expectSpan(m, "authorization.Authorizer.SyncRoles")
		m.logger.EXPECT().Infof(gomock.Any(), 2)

		m.client.EXPECT().Check(gomock.Any(), "user:owner-1", OWNER_RELATION, "organization:org-1").Return(true, nil)
		m.client.EXPECT().Check(gomock.Any(), "user:member-1", MEMBER_RELATION, "organization:org-1").Return(false, nil)
		m.client.EXPECT().Check(gomock.Any(), "user:admin-1", ADMIN_RELATION, "organization:org-2").Return(false, nil)
		m.client.EXPECT().WriteTuples(gomock.Any(),
			openfga.Tuple{User: "user:member-1", Relation: MEMBER_RELATION, Object: "organization:org-1"},
			openfga.Tuple{User: "user:admin-1", Relation: ADMIN_RELATION, Object: "organization:org-2"},
		).Return(nil)

		written, err := a.SyncRoles(context.Background(), members)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if written != 2 {
			t.Errorf("expected 2 tuples written, got %d", written)
		}
	})

	t.Run("check failure aborts before writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		a, m := newAuthorizer(ctrl)
		expectSpan(m, "authorization.Authorizer.SyncRoles")

		m.client.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("openfga unavailable"))

		if _, err := a.SyncRoles(context.Background(), members); err == nil {
			t.Error("expected error but got none")
		}
	})

	t.Run("large syncs are batched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		many := make([]*types.Member, 0, 150)
		for i := 0; i < 150; i++ {
			many = append(many, &types.Member{OrganizationID: "org-1", ProfileID: fmt.Sprintf("user-%d", i), Role: types.RoleMember})
		}

		a, m := newAuthorizer(ctrl)
		expectSpan(m, "authorization.Authorizer.SyncRoles")
		m.logger.EXPECT().Infof(gomock.Any(), 150)

		m.client.EXPECT().Check(gomock.Any(), gomock.Any(), MEMBER_RELATION, "organization:org-1").Return(false, nil).Times(150)

		var sizes []int
		m.client.EXPECT().WriteTuples(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tuples ...openfga.Tuple) error {
			sizes = append(sizes, len(tuples))
			return nil
		}).Times(2)

		written, err := a.SyncRoles(context.Background(), many)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if written != 150 || !slices.Equal(sizes, []int{100, 50}) {
			t.Errorf("expected batches of 100 and 50, got %v (%d written)", sizes, written)
		}
	})
}

func TestAuthorizationModelProvider(t *testing.T) {
	model, err := NewAuthorizationModelProvider("v0").Model()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if model.SchemaVersion != "1.1" {
		t.Errorf("expected schema 1.1, got %s", model.SchemaVersion)
	}

	var names []string
	for _, td := range model.TypeDefinitions {
		names = append(names, td.Type)
	}
	if !slices.Contains(names, "organization") || !slices.Contains(names, "user") {
		t.Errorf("unexpected type definitions %v", names)
	}

	if _, err := NewAuthorizationModelProvider("v9").Model(); err == nil {
		t.Error("expected unknown version error")
	}
}
