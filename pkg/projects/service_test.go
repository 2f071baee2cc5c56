// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/provisioning"
	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package projects -destination ./mock_interfaces.go -source=./interfaces.go

// inlineTx runs fn directly, standing in for a database transaction.
type inlineTx struct {
	calls int
}

func (tx *inlineTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type fixture struct {
	svc         *Service
	store       *MockStorageInterface
	authz       *MockAuthorizerInterface
	provisioner *MockProvisionerInterface
	tx          *inlineTx
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		store:       NewMockStorageInterface(ctrl),
		authz:       NewMockAuthorizerInterface(ctrl),
		provisioner: NewMockProvisionerInterface(ctrl),
		tx:          new(inlineTx),
	}
	logger := logging.NewNoopLogger()
	f.svc = NewService(f.store, f.tx, f.authz, f.provisioner, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	return f
}

func ptr[T any](v T) *T {
	return &v
}

var (
	owner    = &types.User{ID: "u1", Email: "owner@example.com", Role: types.RoleUser}
	stranger = &types.User{ID: "u2", Email: "stranger@example.com", Role: types.RoleUser}
)

func TestService_CreateProject(t *testing.T) {
	tests := []struct {
		name        string
		user        *types.User
		in          *ProjectInput
		setupMocks  func(*fixture)
		expectedErr error
	}{
		{
			name: "defaults applied",
			user: owner,
			in:   &ProjectInput{Name: ptr("Demo")},
			setupMocks: func(f *fixture) {
				f.store.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *types.Project) (*types.Project, error) {
					want := types.Project{Name: "Demo", APIVersion: 3, Scheme: "grpc", ServerName: "FLServer.com", CreatedBy: "u1"}
					if !reflect.DeepEqual(*p, want) {
						t.Errorf("expected %+v, got %+v", want, *p)
					}
					out := *p
					out.ID = "p1"
					return &out, nil
				})
			},
		},
		{
			name:        "name required",
			user:        owner,
			in:          &ProjectInput{Description: ptr("no name")},
			setupMocks:  func(*fixture) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "unknown scheme",
			user:        owner,
			in:          &ProjectInput{Name: ptr("Demo"), Scheme: ptr("carrier-pigeon")},
			setupMocks:  func(*fixture) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "anonymous caller",
			in:          &ProjectInput{Name: ptr("Demo")},
			setupMocks:  func(*fixture) {},
			expectedErr: types.ErrUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			test.setupMocks(f)

			project, err := f.svc.CreateProject(context.Background(), test.user, test.in)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if project.ID != "p1" {
				t.Errorf("unexpected project %+v", project)
			}
		})
	}
}

func TestService_UpdateProject(t *testing.T) {
	t.Run("only provided fields are written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		project := &types.Project{ID: "p1", Name: "Demo", Scheme: "grpc", CreatedBy: "u1"}

		f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(project, nil)
		f.authz.EXPECT().CanManageProject(gomock.Any(), owner, project).Return(nil)
		f.store.EXPECT().UpdateProject(gomock.Any(), project, []string{"description", "frozen"}).Return(nil)

		updated, err := f.svc.UpdateProject(context.Background(), owner, "p1", &ProjectInput{Description: ptr("new"), Frozen: ptr(true)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Demo" || updated.Description != "new" || !updated.Frozen {
			t.Errorf("unexpected project %+v", updated)
		}
	})

	t.Run("non-owner is forbidden and nothing is written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		project := &types.Project{ID: "p1", CreatedBy: "u1"}

		f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(project, nil)
		f.authz.EXPECT().CanManageProject(gomock.Any(), stranger, project).Return(fmt.Errorf("%w: not yours", types.ErrForbidden))

		_, err := f.svc.UpdateProject(context.Background(), stranger, "p1", &ProjectInput{Name: ptr("Hijacked")})
		if !errors.Is(err, types.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("blank name is rejected before loading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)

		_, err := f.svc.UpdateProject(context.Background(), owner, "p1", &ProjectInput{Name: ptr("  ")})
		if !errors.Is(err, types.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestService_DeleteProject(t *testing.T) {
	tests := []struct {
		name       string
		discardErr error
	}{
		{name: "discards output"},
		{name: "discard failure does not fail deletion", discardErr: errors.New("busy")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			project := &types.Project{ID: "p1", CreatedBy: "u1"}

			gomock.InOrder(
				f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(project, nil),
				f.authz.EXPECT().CanManageProject(gomock.Any(), owner, project).Return(nil),
				f.store.EXPECT().DeleteProject(gomock.Any(), "p1").Return(nil),
				f.provisioner.EXPECT().Discard(gomock.Any(), "p1").Return(test.discardErr),
			)

			if err := f.svc.DeleteProject(context.Background(), owner, "p1"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if f.tx.calls != 1 {
				t.Errorf("expected one transaction, got %d", f.tx.calls)
			}
		})
	}
}

func TestService_GetProject(t *testing.T) {
	tests := []struct {
		name        string
		status      *provisioning.Status
		statusErr   error
		provisioned bool
	}{
		{name: "provisioned", status: &provisioning.Status{State: provisioning.StateProvisioned}, provisioned: true},
		{name: "not provisioned", status: &provisioning.Status{State: provisioning.StateNotProvisioned}},
		{name: "status failure", statusErr: errors.New("disk gone")},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(&types.Project{ID: "p1"}, nil)
			f.store.EXPECT().ListServers(gomock.Any(), "p1").Return([]*types.Server{{ID: "s1"}}, nil)
			f.store.EXPECT().ListClients(gomock.Any(), "p1").Return(nil, nil)
			f.store.EXPECT().ListAdmins(gomock.Any(), "p1").Return(nil, nil)
			f.provisioner.EXPECT().Status(gomock.Any(), "p1").Return(test.status, test.statusErr)

			detail, err := f.svc.GetProject(context.Background(), "p1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if detail.Project.Provisioned != test.provisioned {
				t.Errorf("expected provisioned=%v", test.provisioned)
			}
			if len(detail.Servers) != 1 || detail.Clients == nil || detail.Admins == nil {
				t.Errorf("unexpected participants %+v", detail)
			}
		})
	}

	t.Run("missing project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newFixture(ctrl)
		f.store.EXPECT().GetProjectByID(gomock.Any(), "p9").Return(nil, storage.ErrNotFound)

		if _, err := f.svc.GetProject(context.Background(), "p9"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestService_AddServer(t *testing.T) {
	open := &types.Project{ID: "p1", CreatedBy: "u1"}
	frozen := &types.Project{ID: "p1", CreatedBy: "u1", Frozen: true}

	tests := []struct {
		name        string
		user        *types.User
		in          *ServerInput
		setupMocks  func(*fixture)
		expectedErr error
	}{
		{
			name: "defaults and touch",
			user: owner,
			in:   &ServerInput{Name: ptr("fl.example.com"), Org: ptr("acme")},
			setupMocks: func(f *fixture) {
				f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(open, nil)
				f.authz.EXPECT().CanManageProject(gomock.Any(), owner, open).Return(nil)
				f.store.EXPECT().CreateServer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *types.Server) (*types.Server, error) {
					if s.FedLearnPort != 8002 || s.AdminPort != 8003 || s.ConnectionSecurity != types.ConnectionMTLS || s.ProjectID != "p1" || s.ApprovalState != types.ApprovalApproved {
						t.Errorf("unexpected defaults %+v", s)
					}
					out := *s
					out.ID = "s1"
					return &out, nil
				})
				f.store.EXPECT().TouchProject(gomock.Any(), "p1").Return(nil)
			},
		},
		{
			name: "none maps to clear",
			user: owner,
			in:   &ServerInput{Name: ptr("fl.example.com"), Org: ptr("acme"), ConnectionSecurity: ptr("none")},
			setupMocks: func(f *fixture) {
				f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(open, nil)
				f.authz.EXPECT().CanManageProject(gomock.Any(), owner, open).Return(nil)
				f.store.EXPECT().CreateServer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *types.Server) (*types.Server, error) {
					if s.ConnectionSecurity != types.ConnectionClear {
						t.Errorf("expected clear, got %s", s.ConnectionSecurity)
					}
					out := *s
					out.ID = "s1"
					return &out, nil
				})
				f.store.EXPECT().TouchProject(gomock.Any(), "p1").Return(nil)
			},
		},
		{
			name:        "org required before the store is touched",
			user:        owner,
			in:          &ServerInput{Name: ptr("fl.example.com")},
			setupMocks:  func(*fixture) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "port out of range",
			user:        owner,
			in:          &ServerInput{Name: ptr("fl.example.com"), Org: ptr("acme"), AdminPort: ptr(70000)},
			setupMocks:  func(*fixture) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "frozen project",
			user: owner,
			in:   &ServerInput{Name: ptr("fl.example.com"), Org: ptr("acme")},
			setupMocks: func(f *fixture) {
				f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(frozen, nil)
				f.authz.EXPECT().CanManageProject(gomock.Any(), owner, frozen).Return(nil)
			},
			expectedErr: types.ErrConflict,
		},
		{
			name: "non-owner",
			user: stranger,
			in:   &ServerInput{Name: ptr("fl.example.com"), Org: ptr("acme")},
			setupMocks: func(f *fixture) {
				f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(open, nil)
				f.authz.EXPECT().CanManageProject(gomock.Any(), stranger, open).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newFixture(ctrl)
			test.setupMocks(f)

			server, err := f.svc.AddServer(context.Background(), test.user, "p1", test.in)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				if f.tx.calls != 0 {
					t.Errorf("expected no transaction, got %d", f.tx.calls)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if server.ID != "s1" {
				t.Errorf("unexpected server %+v", server)
			}
		})
	}
}

func TestService_UpdateClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	project := &types.Project{ID: "p1", CreatedBy: "u1"}
	client := &types.Client{ID: "c1", ProjectID: "p1", Name: "site-1", Org: "acme", NumGPUs: 1, GPUMemoryGiB: 16}

	f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(project, nil)
	f.authz.EXPECT().CanManageProject(gomock.Any(), owner, project).Return(nil)
	f.store.EXPECT().GetClient(gomock.Any(), "p1", "c1").Return(client, nil)
	f.store.EXPECT().UpdateClient(gomock.Any(), client, []string{"num_gpus", "gpu_memory_gib"}).Return(nil)
	f.store.EXPECT().TouchProject(gomock.Any(), "p1").Return(nil)

	updated, err := f.svc.UpdateClient(context.Background(), owner, "p1", "c1", &ClientInput{NumGPUs: ptr(4), GPUMemory: ptr(80)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.NumGPUs != 4 || updated.GPUMemoryGiB != 80 || updated.Name != "site-1" {
		t.Errorf("unexpected client %+v", updated)
	}
}

func TestService_DeleteAdminMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	project := &types.Project{ID: "p1", CreatedBy: "u1"}

	f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(project, nil)
	f.authz.EXPECT().CanManageProject(gomock.Any(), owner, project).Return(nil)
	f.store.EXPECT().DeleteAdmin(gomock.Any(), "p1", "a9").Return(fmt.Errorf("admins: %w", storage.ErrNotFound))

	err := f.svc.DeleteAdmin(context.Background(), owner, "p1", "a9")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_AddAdminDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	project := &types.Project{ID: "p1", CreatedBy: "u1"}

	f.store.EXPECT().GetProjectByID(gomock.Any(), "p1").Return(project, nil)
	f.authz.EXPECT().CanManageProject(gomock.Any(), owner, project).Return(nil)
	f.store.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *types.Admin) (*types.Admin, error) {
		if a.Role != types.AdminRoleProjectAdmin || a.Email != "lead@example.com" || a.ApprovalState != types.ApprovalApproved {
			t.Errorf("unexpected admin %+v", a)
		}
		out := *a
		out.ID = "a1"
		return &out, nil
	})
	f.store.EXPECT().TouchProject(gomock.Any(), "p1").Return(nil)

	admin, err := f.svc.AddAdmin(context.Background(), owner, "p1", &AdminInput{Email: ptr("Lead@Example.com"), Org: ptr("acme")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.ID != "a1" {
		t.Errorf("unexpected admin %+v", admin)
	}
}
