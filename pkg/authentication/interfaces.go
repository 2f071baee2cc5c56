// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

type TokenVerifierInterface interface {
	// VerifyToken validates a raw bearer token and returns its subject, the user email
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

type TokenIssuerInterface interface {
	// IssueToken signs a token for the subject and returns it with its expiry
	IssueToken(ctx context.Context, subject string) (*Token, error)
}

type UserStoreInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}
