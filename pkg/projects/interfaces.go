// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"

	"github.com/canonical/provisioning-dashboard/internal/provisioning"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

type ServiceInterface interface {
	ListProjects(ctx context.Context) ([]*types.Project, error)
	GetProject(ctx context.Context, id string) (*types.ProjectDetail, error)
	CreateProject(ctx context.Context, user *types.User, in *ProjectInput) (*types.Project, error)
	UpdateProject(ctx context.Context, user *types.User, id string, in *ProjectInput) (*types.Project, error)
	DeleteProject(ctx context.Context, user *types.User, id string) error

	AddServer(ctx context.Context, user *types.User, projectID string, in *ServerInput) (*types.Server, error)
	UpdateServer(ctx context.Context, user *types.User, projectID, id string, in *ServerInput) (*types.Server, error)
	DeleteServer(ctx context.Context, user *types.User, projectID, id string) error

	AddClient(ctx context.Context, user *types.User, projectID string, in *ClientInput) (*types.Client, error)
	UpdateClient(ctx context.Context, user *types.User, projectID, id string, in *ClientInput) (*types.Client, error)
	DeleteClient(ctx context.Context, user *types.User, projectID, id string) error

	AddAdmin(ctx context.Context, user *types.User, projectID string, in *AdminInput) (*types.Admin, error)
	UpdateAdmin(ctx context.Context, user *types.User, projectID, id string, in *AdminInput) (*types.Admin, error)
	DeleteAdmin(ctx context.Context, user *types.User, projectID, id string) error
}

type StorageInterface interface {
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
}

// TxInterface runs fn inside one database transaction.
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthorizerInterface interface {
	CanManageProject(ctx context.Context, user *types.User, project *types.Project) error
}

type ProvisionerInterface interface {
	Status(ctx context.Context, projectID string) (*provisioning.Status, error)
	Discard(ctx context.Context, projectID string) error
}
