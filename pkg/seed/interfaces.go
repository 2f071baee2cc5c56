// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package seed

import (
	"context"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

type StorageInterface interface {
	CountUsers(ctx context.Context) (int, error)
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	CreateProject(ctx context.Context, p *types.Project) (*types.Project, error)
	CreateServer(ctx context.Context, v *types.Server) (*types.Server, error)
	CreateAdmin(ctx context.Context, v *types.Admin) (*types.Admin, error)
}

// TxInterface runs fn inside one database transaction.
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
