// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var userContextKey = contextKey{}

// WithUser returns a new context carrying the authenticated user.
func WithUser(ctx context.Context, user *types.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUser retrieves the authenticated user from the context.
// Returns nil and false if no user was resolved for the request.
func GetUser(ctx context.Context) (*types.User, bool) {
	u, ok := ctx.Value(userContextKey).(*types.User)
	return u, ok && u != nil
}
