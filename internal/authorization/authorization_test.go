// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

var (
	sysAdmin  = &types.User{ID: "admin-1", Email: "admin@example.com", Role: types.RoleAdmin}
	creator   = &types.User{ID: "user-1", Email: "owner@example.com", Role: types.RoleUser, Organization: "acme"}
	projAdmin = &types.User{ID: "user-2", Email: "pa@example.com", Role: types.RoleProjAdmin}
	outsider  = &types.User{ID: "user-3", Email: "bob@example.com", Role: types.RoleUser, Organization: "beta"}
	project   = &types.Project{ID: "p1", CreatedBy: "user-1"}
)

func setupAuthorizer(ctrl *gomock.Controller, span string) (*Authorizer, *MockParticipantStoreInterface) {
	mockStore := NewMockParticipantStoreInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	logger := logging.NewNoopLogger()

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), span).Return(ctx, trace.SpanFromContext(ctx))

	return NewAuthorizer(mockStore, mockTracer, monitoring.NewNoopMonitor("test", logger), logger), mockStore
}

func TestAuthorizer_CanManageProject(t *testing.T) {
	testCases := []struct {
		name    string
		user    *types.User
		allowed bool
	}{
		{name: "system admin", user: sysAdmin, allowed: true},
		{name: "creator", user: creator, allowed: true},
		{name: "project admin role is not enough", user: projAdmin, allowed: false},
		{name: "outsider", user: outsider, allowed: false},
		{name: "anonymous", user: nil, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, _ := setupAuthorizer(ctrl, "authorization.Authorizer.CanManageProject")

			err := a.CanManageProject(context.Background(), tc.user, project)

			if tc.allowed && err != nil {
				t.Errorf("expected access, got %v", err)
			}
			if !tc.allowed && !errors.Is(err, types.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestAuthorizer_CanReviewApplications(t *testing.T) {
	testCases := []struct {
		name       string
		user       *types.User
		setupMocks func(*MockParticipantStoreInterface)
		allowed    bool
		expectErr  error
	}{
		{
			name:       "creator",
			user:       creator,
			setupMocks: func(*MockParticipantStoreInterface) {},
			allowed:    true,
		},
		{
			name:       "project admin role",
			user:       projAdmin,
			setupMocks: func(*MockParticipantStoreInterface) {},
			allowed:    true,
		},
		{
			name: "admin participant",
			user: outsider,
			setupMocks: func(m *MockParticipantStoreInterface) {
				m.EXPECT().ListAdmins(gomock.Any(), "p1").Return([]*types.Admin{{Email: "BOB@example.com", ApprovalState: types.ApprovalApproved}}, nil)
			},
			allowed: true,
		},
		{
			name: "rejected admin participant",
			user: outsider,
			setupMocks: func(m *MockParticipantStoreInterface) {
				m.EXPECT().ListAdmins(gomock.Any(), "p1").Return([]*types.Admin{{Email: "bob@example.com", ApprovalState: types.ApprovalRejected}}, nil)
			},
			expectErr: types.ErrForbidden,
		},
		{
			name: "store failure",
			user: outsider,
			setupMocks: func(m *MockParticipantStoreInterface) {
				m.EXPECT().ListAdmins(gomock.Any(), "p1").Return(nil, errors.New("db down"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockStore := setupAuthorizer(ctrl, "authorization.Authorizer.CanReviewApplications")
			tc.setupMocks(mockStore)

			err := a.CanReviewApplications(context.Background(), tc.user, project)

			switch {
			case tc.allowed:
				if err != nil {
					t.Errorf("expected access, got %v", err)
				}
			case tc.expectErr != nil:
				if !errors.Is(err, tc.expectErr) {
					t.Errorf("expected %v, got %v", tc.expectErr, err)
				}
			default:
				if err == nil || errors.Is(err, types.ErrForbidden) {
					t.Errorf("expected store error, got %v", err)
				}
			}
		})
	}
}

func TestAuthorizer_CanDownloadKit(t *testing.T) {
	testCases := []struct {
		name       string
		user       *types.User
		kind       types.ParticipantKind
		itemID     string
		setupMocks func(*MockParticipantStoreInterface)
		allowed    bool
	}{
		{
			name:       "manager downloads anything",
			user:       sysAdmin,
			kind:       types.KindServer,
			setupMocks: func(*MockParticipantStoreInterface) {},
			allowed:    true,
		},
		{
			name: "client org matches",
			user: outsider,
			kind: types.KindClient,
			setupMocks: func(m *MockParticipantStoreInterface) {
				m.EXPECT().ListClients(gomock.Any(), "p1").Return([]*types.Client{{Org: "beta", ApprovalState: types.ApprovalApproved}}, nil)
			},
			allowed: true,
		},
		{
			name: "server org differs",
			user: outsider,
			kind: types.KindServer,
			setupMocks: func(m *MockParticipantStoreInterface) {
				m.EXPECT().ListServers(gomock.Any(), "p1").Return([]*types.Server{{Org: "acme", ApprovalState: types.ApprovalApproved}}, nil)
			},
			allowed: false,
		},
		{
			name: "admin email matches",
			user: outsider,
			kind: types.KindAdmin,
			setupMocks: func(m *MockParticipantStoreInterface) {
				m.EXPECT().ListAdmins(gomock.Any(), "p1").Return([]*types.Admin{{Email: "bob@example.com"}}, nil)
			},
			allowed: true,
		},
		{
			name:   "requested client belongs to the caller's org",
			user:   outsider,
			kind:   types.KindClient,
			itemID: "c2",
			setupMocks: func(m *MockParticipantStoreInterface) {
				m.EXPECT().ListClients(gomock.Any(), "p1").Return([]*types.Client{
					{ID: "c1", Org: "acme", ApprovalState: types.ApprovalApproved},
					{ID: "c2", Org: "beta", ApprovalState: types.ApprovalApproved},
				}, nil)
			},
			allowed: true,
		},
		{
			name:   "requested client belongs to another org",
			user:   outsider,
			kind:   types.KindClient,
			itemID: "c1",
			setupMocks: func(m *MockParticipantStoreInterface) {
				m.EXPECT().ListClients(gomock.Any(), "p1").Return([]*types.Client{
					{ID: "c1", Org: "acme", ApprovalState: types.ApprovalApproved},
					{ID: "c2", Org: "beta", ApprovalState: types.ApprovalApproved},
				}, nil)
			},
			allowed: false,
		},
		{
			name:   "requested admin kit of someone else",
			user:   outsider,
			kind:   types.KindAdmin,
			itemID: "a1",
			setupMocks: func(m *MockParticipantStoreInterface) {
				m.EXPECT().ListAdmins(gomock.Any(), "p1").Return([]*types.Admin{
					{ID: "a1", Email: "owner@example.com"},
					{ID: "a2", Email: "bob@example.com"},
				}, nil)
			},
			allowed: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, mockStore := setupAuthorizer(ctrl, "authorization.Authorizer.CanDownloadKit")
			tc.setupMocks(mockStore)

			err := a.CanDownloadKit(context.Background(), tc.user, project, tc.kind, tc.itemID)

			if tc.allowed && err != nil {
				t.Errorf("expected access, got %v", err)
			}
			if !tc.allowed && !errors.Is(err, types.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}

func TestKitResource(t *testing.T) {
	if r := KitResource("p1", types.KindClient); r != "project:p1#download:client" {
		t.Errorf("unexpected resource %s", r)
	}
}
