// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
)

type NoopVerifier struct{}

// NewNoopVerifier returns a verifier for development setups where tokens are not signed.
func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// VerifyToken treats the bearer value as the user email.
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	if rawToken == "" {
		return "", errors.New("empty token")
	}
	return rawToken, nil
}

// IssueToken hands back the subject as the token so NoopVerifier accepts it.
func (n *NoopVerifier) IssueToken(ctx context.Context, subject string) (*Token, error) {
	return &Token{AccessToken: subject}, nil
}
