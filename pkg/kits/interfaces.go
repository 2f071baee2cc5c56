// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kits

import (
	"context"

	startupkits "github.com/canonical/provisioning-dashboard/internal/kits"
	"github.com/canonical/provisioning-dashboard/internal/provisioning"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

type ServiceInterface interface {
	Provision(ctx context.Context, user *types.User, projectID string, force bool) (*provisioning.Result, error)
	Download(ctx context.Context, user *types.User, kind, projectID, itemID string) (*startupkits.Kit, error)
	Status(ctx context.Context, projectID string) (*provisioning.Status, error)
}

type StorageInterface interface {
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	GetServer(ctx context.Context, projectID, id string) (*types.Server, error)
	GetClient(ctx context.Context, projectID, id string) (*types.Client, error)
	GetAdmin(ctx context.Context, projectID, id string) (*types.Admin, error)
	IncrementParticipantDownloads(ctx context.Context, kind types.ParticipantKind, id string) error
	IncrementUserDownloads(ctx context.Context, id string) error
}

// TxInterface runs fn inside one database transaction.
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthorizerInterface interface {
	CanManageProject(ctx context.Context, user *types.User, project *types.Project) error
	CanDownloadKit(ctx context.Context, user *types.User, project *types.Project, kind types.ParticipantKind, itemID string) error
}

type ProvisionerInterface interface {
	Provision(ctx context.Context, projectID string, force bool) (*provisioning.Result, error)
	Status(ctx context.Context, projectID string) (*provisioning.Status, error)
}

type PackagerInterface interface {
	Package(ctx context.Context, outputRoot string, req startupkits.Request) (*startupkits.Kit, error)
	Bundle(ctx context.Context, filename string, kits []*startupkits.Kit) (*startupkits.Kit, error)
}
