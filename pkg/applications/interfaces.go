// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import (
	"context"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

type ServiceInterface interface {
	Apply(ctx context.Context, user *types.User, projectID string, in *ApplyRequest) (*types.UserApplication, error)
	ListApplications(ctx context.Context, user *types.User, projectID, status string) ([]*types.UserApplication, error)
	Review(ctx context.Context, user *types.User, applicationID, action string) (*types.UserApplication, error)
}

type StorageInterface interface {
	GetProjectByID(ctx context.Context, id string) (*types.Project, error)
	CreateApplication(ctx context.Context, a *types.UserApplication) (*types.UserApplication, error)
	GetApplicationByID(ctx context.Context, id string) (*types.UserApplication, error)
	ListApplicationsByProject(ctx context.Context, projectID, status string) ([]*types.UserApplication, error)
	ReviewApplication(ctx context.Context, id, status, reviewerID string) error
	SetUserApprovalState(ctx context.Context, id string, state types.ApprovalState) error
}

// TxInterface runs fn inside one database transaction.
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type AuthorizerInterface interface {
	CanReviewApplications(ctx context.Context, user *types.User, project *types.Project) error
}
