// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/pkg/authentication"
)

type ServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*types.User, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
}

type StorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
}

type TokenIssuerInterface interface {
	IssueToken(ctx context.Context, subject string) (*authentication.Token, error)
}
