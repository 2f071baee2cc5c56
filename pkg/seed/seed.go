// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package seed fills an empty database with a default administrator and an
// example project.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/pkg/authentication"
)

const (
	defaultOrg        = "example"
	defaultAdminName  = "Admin User"
	defaultServerName = "FLServer.com"
)

type Options struct {
	AdminEmail    string
	AdminPassword string
}

type Seeder struct {
	storage StorageInterface
	tx      TxInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// Run creates the default data when there are no users yet. It reports
// whether anything was written.
func (s *Seeder) Run(ctx context.Context, opts Options) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "seed.Seeder.Run")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(opts.AdminEmail))
	if email == "" || opts.AdminPassword == "" {
		return false, types.Validationf("default admin email and password are required")
	}

	hash, err := authentication.HashPassword(opts.AdminPassword)
	if err != nil {
		return false, err
	}

	var adminID string
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		n, err := s.storage.CountUsers(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		admin, err := s.storage.CreateUser(ctx, &types.User{
			Email:         email,
			Name:          defaultAdminName,
			PasswordHash:  hash,
			Role:          types.RoleAdmin,
			Organization:  defaultOrg,
			ApprovalState: types.ApprovalApproved,
			Active:        true,
		})
		if err != nil {
			return fmt.Errorf("default admin: %w", err)
		}

		project, err := s.storage.CreateProject(ctx, &types.Project{
			Name:        "Example Sorachain Project",
			Description: "Default Sorachain project",
			APIVersion:  3,
			Scheme:      "grpc",
			ServerName:  defaultServerName,
			CreatedBy:   admin.ID,
		})
		if err != nil {
			return fmt.Errorf("example project: %w", err)
		}

		if _, err := s.storage.CreateServer(ctx, &types.Server{
			ProjectID:          project.ID,
			Name:               defaultServerName,
			Org:                defaultOrg,
			FedLearnPort:       8002,
			AdminPort:          8003,
			ConnectionSecurity: types.ConnectionMTLS,
			ApprovalState:      types.ApprovalApproved,
		}); err != nil {
			return fmt.Errorf("example server: %w", err)
		}

		if _, err := s.storage.CreateAdmin(ctx, &types.Admin{
			ProjectID:     project.ID,
			Email:         email,
			Org:           defaultOrg,
			Role:          types.AdminRoleProjectAdmin,
			ApprovalState: types.ApprovalApproved,
		}); err != nil {
			return fmt.Errorf("example admin participant: %w", err)
		}

		adminID = admin.ID
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed default data: %w", err)
	}

	if adminID == "" {
		s.logger.Debugf("users present, skipping default data")
		return false, nil
	}

	s.logger.Security().UserCreated("system", adminID)
	s.logger.Infof("default data initialized, administrator %s", email)

	return true, nil
}

func NewSeeder(storage StorageInterface, tx TxInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Seeder {
	return &Seeder{
		storage: storage,
		tx:      tx,
		tracer:  tracer,
		logger:  logger,
	}
}
