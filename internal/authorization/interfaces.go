// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

type AuthorizerInterface interface {
	CanManageProject(ctx context.Context, user *types.User, project *types.Project) error
	CanReviewApplications(ctx context.Context, user *types.User, project *types.Project) error
	CanDownloadKit(ctx context.Context, user *types.User, project *types.Project, kind types.ParticipantKind, itemID string) error
}

// ParticipantStoreInterface is the subset of storage used to match users
// against the participants of a project.
type ParticipantStoreInterface interface {
	ListServers(ctx context.Context, projectID string) ([]*types.Server, error)
	ListClients(ctx context.Context, projectID string) ([]*types.Client, error)
	ListAdmins(ctx context.Context, projectID string) ([]*types.Admin, error)
}
