// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package seed -destination ./mock_interfaces.go -source=./interfaces.go

type inlineTx struct{}

func (inlineTx) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

var opts = Options{AdminEmail: " Admin@Example.com ", AdminPassword: "admin123"}

func TestSeeder_Run(t *testing.T) {
	tests := []struct {
		name           string
		opts           Options
		setupMocks     func(*testing.T, *MockStorageInterface)
		expectedSeeded bool
		expectedErr    error
	}{
		{
			name: "empty database",
			opts: opts,
			setupMocks: func(t *testing.T, s *MockStorageInterface) {
				s.EXPECT().CountUsers(gomock.Any()).Return(0, nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *types.User) (*types.User, error) {
					if u.Email != "admin@example.com" || u.Role != types.RoleAdmin || u.ApprovalState != types.ApprovalApproved {
						t.Errorf("unexpected admin %+v", u)
					}
					if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("admin123")) != nil {
						t.Error("password not hashed")
					}
					out := *u
					out.ID = "u1"
					return &out, nil
				})
				s.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *types.Project) (*types.Project, error) {
					if p.CreatedBy != "u1" || p.ServerName != "FLServer.com" {
						t.Errorf("unexpected project %+v", p)
					}
					out := *p
					out.ID = "p1"
					return &out, nil
				})
				s.EXPECT().CreateServer(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *types.Server) (*types.Server, error) {
					if v.ProjectID != "p1" || v.FedLearnPort != 8002 || v.AdminPort != 8003 || v.ConnectionSecurity != types.ConnectionMTLS {
						t.Errorf("unexpected server %+v", v)
					}
					return v, nil
				})
				s.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v *types.Admin) (*types.Admin, error) {
					if v.ProjectID != "p1" || v.Email != "admin@example.com" || v.Role != types.AdminRoleProjectAdmin {
						t.Errorf("unexpected admin participant %+v", v)
					}
					return v, nil
				})
			},
			expectedSeeded: true,
		},
		{
			name: "users already present",
			opts: opts,
			setupMocks: func(_ *testing.T, s *MockStorageInterface) {
				s.EXPECT().CountUsers(gomock.Any()).Return(3, nil)
			},
		},
		{
			name: "failure stops the run",
			opts: opts,
			setupMocks: func(_ *testing.T, s *MockStorageInterface) {
				s.EXPECT().CountUsers(gomock.Any()).Return(0, nil)
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&types.User{ID: "u1"}, nil)
				s.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(nil, errors.New("insert failed"))
			},
			expectedErr: errors.New("insert failed"),
		},
		{
			name:        "missing password",
			opts:        Options{AdminEmail: "admin@example.com"},
			setupMocks:  func(*testing.T, *MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockStorageInterface(ctrl)
			test.setupMocks(t, store)

			seeder := NewSeeder(store, inlineTx{}, tracing.NewNoopTracer(), logging.NewNoopLogger())
			seeded, err := seeder.Run(context.Background(), test.opts)

			switch {
			case test.expectedErr == nil && err != nil:
				t.Fatalf("unexpected error: %v", err)
			case errors.Is(test.expectedErr, types.ErrValidation) && !errors.Is(err, types.ErrValidation):
				t.Fatalf("expected validation error, got %v", err)
			case test.expectedErr != nil && err == nil:
				t.Fatalf("expected error %v", test.expectedErr)
			}
			if seeded != test.expectedSeeded {
				t.Errorf("expected seeded=%v, got %v", test.expectedSeeded, seeded)
			}
		})
	}
}
