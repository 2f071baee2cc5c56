// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	CountUsers(ctx context.Context) (int, error)
	SetUserApprovalState(ctx context.Context, id string, state types.ApprovalState) error
	IncrementUserDownloads(ctx context.Context, id string) error

	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	ListProjects(ctx context.Context) ([]*types.Project, error)
	UpdateProject(ctx context.Context, p *types.Project, paths []string) error
	TouchProject(ctx context.Context, id string) error
	DeleteProject(ctx context.Context, id string) error

	CreateServer(ctx context.Context, s *types.Server) (*types.Server, error)
	GetServer(ctx context.Context, projectID, id string) (*types.Server, error)
	ListServers(ctx context.Context, projectID string) ([]*types.Server, error)
	UpdateServer(ctx context.Context, s *types.Server, paths []string) error
	DeleteServer(ctx context.Context, projectID, id string) error

	CreateClient(ctx context.Context, c *types.Client) (*types.Client, error)
	GetClient(ctx context.Context, projectID, id string) (*types.Client, error)
	ListClients(ctx context.Context, projectID string) ([]*types.Client, error)
	UpdateClient(ctx context.Context, c *types.Client, paths []string) error
	DeleteClient(ctx context.Context, projectID, id string) error

	CreateAdmin(ctx context.Context, a *types.Admin) (*types.Admin, error)
	GetAdmin(ctx context.Context, projectID, id string) (*types.Admin, error)
	ListAdmins(ctx context.Context, projectID string) ([]*types.Admin, error)
	UpdateAdmin(ctx context.Context, a *types.Admin, paths []string) error
	DeleteAdmin(ctx context.Context, projectID, id string) error

	IncrementParticipantDownloads(ctx context.Context, kind types.ParticipantKind, id string) error

	CreateApplication(ctx context.Context, a *types.UserApplication) (*types.UserApplication, error)
	GetApplicationByID(ctx context.Context, id string) (*types.UserApplication, error)
	ListApplicationsByProject(ctx context.Context, projectID, status string) ([]*types.UserApplication, error)
	ReviewApplication(ctx context.Context, id, status, reviewerID string) error
}
