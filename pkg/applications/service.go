// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/internal/validation"
)

type Service struct {
	storage StorageInterface
	tx      TxInterface
	authz   AuthorizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Apply records a pending request by user to join the project.
func (s *Service) Apply(ctx context.Context, user *types.User, projectID string, in *ApplyRequest) (*types.UserApplication, error) {
	ctx, span := s.tracer.Start(ctx, "applications.Service.Apply")
	defer span.End()

	if user == nil {
		return nil, types.ErrUnauthorized
	}

	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = types.RoleUser
	}

	application, err := s.storage.CreateApplication(ctx, &types.UserApplication{
		UserID:    user.ID,
		ProjectID: projectID,
		Role:      role,
		Message:   in.Message,
		Status:    types.ApplicationPending,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: Already applied to this project", types.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return application, nil
}

// ListApplications returns the project's applications, optionally
// filtered by status, to users allowed to review them.
func (s *Service) ListApplications(ctx context.Context, user *types.User, projectID, status string) ([]*types.UserApplication, error) {
	ctx, span := s.tracer.Start(ctx, "applications.Service.ListApplications")
	defer span.End()

	switch status {
	case "", types.ApplicationPending, types.ApplicationApproved, types.ApplicationRejected:
	default:
		return nil, types.Validationf("unknown application status %q", status)
	}

	project, err := s.storage.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CanReviewApplications(ctx, user, project); err != nil {
		return nil, err
	}

	return s.storage.ListApplicationsByProject(ctx, projectID, status)
}

// Review approves or rejects a pending application. Approval also marks
// the applicant as approved, both in the same transaction.
func (s *Service) Review(ctx context.Context, user *types.User, applicationID, action string) (*types.UserApplication, error) {
	ctx, span := s.tracer.Start(ctx, "applications.Service.Review")
	defer span.End()

	if action == "" {
		action = ActionApprove
	}

	var status string
	switch action {
	case ActionApprove:
		status = types.ApplicationApproved
	case ActionReject:
		status = types.ApplicationRejected
	default:
		return nil, types.Validationf("Invalid action")
	}

	application, err := s.storage.GetApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	project, err := s.storage.GetProjectByID(ctx, application.ProjectID)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CanReviewApplications(ctx, user, project); err != nil {
		return nil, err
	}

	if application.Status != types.ApplicationPending {
		return nil, fmt.Errorf("%w: application already %s", types.ErrConflict, application.Status)
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.ReviewApplication(ctx, applicationID, status, user.ID); err != nil {
			return err
		}

		if status == types.ApplicationApproved {
			return s.storage.SetUserApprovalState(ctx, application.UserID, types.ApprovalApproved)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to review application: %w", err)
	}

	s.logger.Security().ApplicationReviewed(user.Email, applicationID, status)

	application.Status = status
	application.ReviewedBy = user.ID

	return application, nil
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	authz AuthorizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tx:      tx,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
