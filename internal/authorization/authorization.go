// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

// Authorizer decides access from project ownership, user roles and
// participant membership.
type Authorizer struct {
	store ParticipantStoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) deny(user *types.User, resource string) error {
	a.logger.Security().AuthzFailure(subject(user), resource)
	return fmt.Errorf("%w: %s", types.ErrForbidden, resource)
}

func (a *Authorizer) isManager(user *types.User, project *types.Project) bool {
	return user != nil && project != nil && (user.IsAdmin() || project.CreatedBy == user.ID)
}

// CanManageProject allows system admins and the project creator.
func (a *Authorizer) CanManageProject(ctx context.Context, user *types.User, project *types.Project) error {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManageProject")
	defer span.End()

	if a.isManager(user, project) {
		return nil
	}

	return a.deny(user, ProjectResource(project.ID, MANAGE_PERMISSION))
}

// CanReviewApplications additionally allows project admins and admin
// participants of the project.
func (a *Authorizer) CanReviewApplications(ctx context.Context, user *types.User, project *types.Project) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanReviewApplications")
	defer span.End()

	if a.isManager(user, project) || (user != nil && user.Role == types.RoleProjAdmin) {
		return nil
	}

	if user != nil {
		ok, err := a.isAdminParticipant(ctx, user, project.ID, "")
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
	}

	return a.deny(user, ProjectResource(project.ID, REVIEW_PERMISSION))
}

// CanDownloadKit allows managers, and participants whose organization
// (servers, clients) or email (admins) matches the requested kind. A
// non-empty itemID restricts the match to that participant.
func (a *Authorizer) CanDownloadKit(ctx context.Context, user *types.User, project *types.Project, kind types.ParticipantKind, itemID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanDownloadKit")
	defer span.End()

	if a.isManager(user, project) {
		return nil
	}

	if user == nil {
		return a.deny(user, KitResource(project.ID, kind))
	}

	var (
		ok  bool
		err error
	)

	switch kind {
	case types.KindServer:
		ok, err = a.serverOrgMatches(ctx, user, project.ID, itemID)
	case types.KindClient:
		ok, err = a.clientOrgMatches(ctx, user, project.ID, itemID)
	case types.KindAdmin:
		ok, err = a.isAdminParticipant(ctx, user, project.ID, itemID)
	}

	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	return a.deny(user, KitResource(project.ID, kind))
}

// matchesItem is true when no item was asked for or id is that item.
func matchesItem(itemID, id string) bool {
	return itemID == "" || itemID == id
}

func (a *Authorizer) isAdminParticipant(ctx context.Context, user *types.User, projectID, itemID string) (bool, error) {
	admins, err := a.store.ListAdmins(ctx, projectID)
	if err != nil {
		return false, fmt.Errorf("failed to list admins: %w", err)
	}

	for _, admin := range admins {
		if matchesItem(itemID, admin.ID) && admin.ApprovalState != types.ApprovalRejected && strings.EqualFold(admin.Email, user.Email) {
			return true, nil
		}
	}
	return false, nil
}

func (a *Authorizer) serverOrgMatches(ctx context.Context, user *types.User, projectID, itemID string) (bool, error) {
	if user.Organization == "" {
		return false, nil
	}

	servers, err := a.store.ListServers(ctx, projectID)
	if err != nil {
		return false, fmt.Errorf("failed to list servers: %w", err)
	}

	for _, s := range servers {
		if matchesItem(itemID, s.ID) && s.ApprovalState != types.ApprovalRejected && s.Org == user.Organization {
			return true, nil
		}
	}
	return false, nil
}

func (a *Authorizer) clientOrgMatches(ctx context.Context, user *types.User, projectID, itemID string) (bool, error) {
	if user.Organization == "" {
		return false, nil
	}

	clients, err := a.store.ListClients(ctx, projectID)
	if err != nil {
		return false, fmt.Errorf("failed to list clients: %w", err)
	}

	for _, c := range clients {
		if matchesItem(itemID, c.ID) && c.ApprovalState != types.ApprovalRejected && c.Org == user.Organization {
			return true, nil
		}
	}
	return false, nil
}

func NewAuthorizer(
	store ParticipantStoreInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Authorizer {
	return &Authorizer{
		store:   store,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
