// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

// StorageInterface is the subset of storage read while building documents.
type StorageInterface interface {
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	ListServers(ctx context.Context, projectID string) ([]*types.Server, error)
	ListClients(ctx context.Context, projectID string) ([]*types.Client, error)
	ListAdmins(ctx context.Context, projectID string) ([]*types.Admin, error)
}

type BuilderInterface interface {
	Build(ctx context.Context, projectID string) (*Document, *BuildReport, error)
}

// CommandRunnerInterface runs the external provisioning tool.
type CommandRunnerInterface interface {
	Run(ctx context.Context, configPath, outputDir string) (*RunResult, error)
}

type ProvisionerInterface interface {
	Provision(ctx context.Context, projectID string, force bool) (*Result, error)
	ForceReprovision(ctx context.Context, projectID string) (*Result, error)
	Status(ctx context.Context, projectID string) (*Status, error)
	Discard(ctx context.Context, projectID string) error
}
