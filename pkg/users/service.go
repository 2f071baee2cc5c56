// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/internal/validation"
	"github.com/canonical/provisioning-dashboard/pkg/authentication"
)

var errInvalidCredentials = fmt.Errorf("%w: Invalid credentials", types.ErrUnauthorized)

type Service struct {
	storage StorageInterface
	tokens  TokenIssuerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a pending account with the default user role.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.Register")
	defer span.End()

	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	req.Organization = strings.TrimSpace(req.Organization)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	hash, err := authentication.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.CreateUser(ctx, &types.User{
		Email:         req.Email,
		Name:          req.Name,
		PasswordHash:  hash,
		Role:          types.RoleUser,
		Organization:  req.Organization,
		ApprovalState: types.ApprovalPending,
		Active:        true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: User already exists", types.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Security().UserCreated(user.Email, user.ID)

	return user, nil
}

// Login checks the credentials and issues a bearer token for the user.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.Login")
	defer span.End()

	req.Email = normalizeEmail(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(req.Email, "unknown user")
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !user.Active {
		s.logger.Security().AuthnFailure(req.Email, "inactive user")
		return nil, errInvalidCredentials
	}

	if !authentication.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Security().AuthnFailure(req.Email, "password mismatch")
		return nil, errInvalidCredentials
	}

	token, err := s.tokens.IssueToken(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Security().AuthnSuccess(user.Email)

	resp := &LoginResponse{AccessToken: token.AccessToken, User: user}
	if !token.ExpiresAt.IsZero() {
		resp.ExpiresAt = &token.ExpiresAt
	}

	return resp, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	return s.storage.ListUsers(ctx)
}

func NewService(
	storage StorageInterface,
	tokens TokenIssuerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tokens:  tokens,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
