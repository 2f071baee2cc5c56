// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/provisioning"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/internal/validation"
)

type Service struct {
	storage     StorageInterface
	tx          TxInterface
	authz       AuthorizerInterface
	provisioner ProvisionerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListProjects(ctx context.Context) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.ListProjects")
	defer span.End()

	return s.storage.ListProjects(ctx)
}

// GetProject returns the project with its participants. A provisioning
// status that cannot be read is reported as not provisioned.
func (s *Service) GetProject(ctx context.Context, id string) (*types.ProjectDetail, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.GetProject")
	defer span.End()

	project, err := s.storage.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	servers, err := s.storage.ListServers(ctx, id)
	if err != nil {
		return nil, err
	}
	clients, err := s.storage.ListClients(ctx, id)
	if err != nil {
		return nil, err
	}
	admins, err := s.storage.ListAdmins(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &types.ProjectDetail{
		Project: types.ProjectSummary{Project: project},
		Servers: nonNil(servers),
		Clients: nonNil(clients),
		Admins:  nonNil(admins),
	}

	status, err := s.provisioner.Status(ctx, id)
	if err != nil {
		s.logger.Warnf("failed to read provisioning status of project %s: %v", id, err)
	} else {
		detail.Project.Provisioned = status.State == provisioning.StateProvisioned
	}

	return detail, nil
}

func (s *Service) CreateProject(ctx context.Context, user *types.User, in *ProjectInput) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.CreateProject")
	defer span.End()

	if user == nil {
		return nil, types.ErrUnauthorized
	}

	if err := errors.Join(validation.Required("name", in.Name), validation.Struct(in)); err != nil {
		return nil, err
	}

	project := &types.Project{
		APIVersion: defaultAPIVersion,
		Scheme:     defaultScheme,
		ServerName: defaultServerName,
		CreatedBy:  user.ID,
	}
	applyProject(project, in)

	created, err := s.storage.CreateProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Infof("project %s created by %s", created.ID, user.Email)

	return created, nil
}

// UpdateProject changes only the fields present in the input.
func (s *Service) UpdateProject(ctx context.Context, user *types.User, id string, in *ProjectInput) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.UpdateProject")
	defer span.End()

	if err := errors.Join(notBlank("name", in.Name), validation.Struct(in)); err != nil {
		return nil, err
	}

	project, err := s.storage.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authz.CanManageProject(ctx, user, project); err != nil {
		return nil, err
	}

	paths := applyProject(project, in)
	if err := s.storage.UpdateProject(ctx, project, paths); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes the project, its participants and applications,
// then discards any provisioning output.
func (s *Service) DeleteProject(ctx context.Context, user *types.User, id string) error {
	ctx, span := s.tracer.Start(ctx, "projects.Service.DeleteProject")
	defer span.End()

	project, err := s.storage.GetProjectByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authz.CanManageProject(ctx, user, project); err != nil {
		return err
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.storage.DeleteProject(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if err := s.provisioner.Discard(ctx, id); err != nil {
		s.logger.Errorf("failed to discard provisioning output of project %s: %v", id, err)
	}

	s.logger.Infof("project %s deleted by %s", id, user.Email)

	return nil
}

// mutate loads the project, checks the caller may change its participants
// and runs fn in a transaction that also bumps the project's updated_at.
func (s *Service) mutate(ctx context.Context, user *types.User, projectID string, fn func(context.Context) error) error {
	project, err := s.storage.GetProjectByID(ctx, projectID)
	if err != nil {
		return err
	}

	if err := s.authz.CanManageProject(ctx, user, project); err != nil {
		return err
	}

	if project.Frozen {
		return fmt.Errorf("%w: project %s is frozen", types.ErrConflict, projectID)
	}

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			return err
		}
		return s.storage.TouchProject(ctx, projectID)
	})
}

func (s *Service) AddServer(ctx context.Context, user *types.User, projectID string, in *ServerInput) (*types.Server, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.AddServer")
	defer span.End()

	if err := errors.Join(validation.Required("name", in.Name), validation.Required("org", in.Org), validation.Struct(in)); err != nil {
		return nil, err
	}

	server := &types.Server{
		ProjectID:          projectID,
		FedLearnPort:       defaultFedLearnPort,
		AdminPort:          defaultAdminPort,
		ConnectionSecurity: types.ConnectionMTLS,
		ApprovalState:      types.ApprovalApproved,
	}
	applyServer(server, in)

	var created *types.Server
	err := s.mutate(ctx, user, projectID, func(ctx context.Context) (err error) {
		created, err = s.storage.CreateServer(ctx, server)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateServer(ctx context.Context, user *types.User, projectID, id string, in *ServerInput) (*types.Server, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.UpdateServer")
	defer span.End()

	if err := errors.Join(notBlank("name", in.Name), notBlank("org", in.Org), validation.Struct(in)); err != nil {
		return nil, err
	}

	var server *types.Server
	err := s.mutate(ctx, user, projectID, func(ctx context.Context) error {
		current, err := s.storage.GetServer(ctx, projectID, id)
		if err != nil {
			return err
		}

		if err := s.storage.UpdateServer(ctx, current, applyServer(current, in)); err != nil {
			return err
		}

		server = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return server, nil
}

func (s *Service) DeleteServer(ctx context.Context, user *types.User, projectID, id string) error {
	ctx, span := s.tracer.Start(ctx, "projects.Service.DeleteServer")
	defer span.End()

	return s.mutate(ctx, user, projectID, func(ctx context.Context) error {
		return s.storage.DeleteServer(ctx, projectID, id)
	})
}

func (s *Service) AddClient(ctx context.Context, user *types.User, projectID string, in *ClientInput) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.AddClient")
	defer span.End()

	if err := errors.Join(validation.Required("name", in.Name), validation.Required("org", in.Org), validation.Struct(in)); err != nil {
		return nil, err
	}

	client := &types.Client{
		ProjectID:     projectID,
		NumGPUs:       defaultNumGPUs,
		GPUMemoryGiB:  defaultGPUMemory,
		ApprovalState: types.ApprovalPending,
	}
	applyClient(client, in)

	var created *types.Client
	err := s.mutate(ctx, user, projectID, func(ctx context.Context) (err error) {
		created, err = s.storage.CreateClient(ctx, client)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateClient(ctx context.Context, user *types.User, projectID, id string, in *ClientInput) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.UpdateClient")
	defer span.End()

	if err := errors.Join(notBlank("name", in.Name), notBlank("org", in.Org), validation.Struct(in)); err != nil {
		return nil, err
	}

	var client *types.Client
	err := s.mutate(ctx, user, projectID, func(ctx context.Context) error {
		current, err := s.storage.GetClient(ctx, projectID, id)
		if err != nil {
			return err
		}

		if err := s.storage.UpdateClient(ctx, current, applyClient(current, in)); err != nil {
			return err
		}

		client = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (s *Service) DeleteClient(ctx context.Context, user *types.User, projectID, id string) error {
	ctx, span := s.tracer.Start(ctx, "projects.Service.DeleteClient")
	defer span.End()

	return s.mutate(ctx, user, projectID, func(ctx context.Context) error {
		return s.storage.DeleteClient(ctx, projectID, id)
	})
}

func (s *Service) AddAdmin(ctx context.Context, user *types.User, projectID string, in *AdminInput) (*types.Admin, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.AddAdmin")
	defer span.End()

	if err := errors.Join(validation.Required("email", in.Email), validation.Required("org", in.Org), validation.Struct(in)); err != nil {
		return nil, err
	}

	admin := &types.Admin{
		ProjectID:     projectID,
		Role:          types.AdminRoleProjectAdmin,
		ApprovalState: types.ApprovalApproved,
	}
	applyAdmin(admin, in)

	var created *types.Admin
	err := s.mutate(ctx, user, projectID, func(ctx context.Context) (err error) {
		created, err = s.storage.CreateAdmin(ctx, admin)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateAdmin(ctx context.Context, user *types.User, projectID, id string, in *AdminInput) (*types.Admin, error) {
	ctx, span := s.tracer.Start(ctx, "projects.Service.UpdateAdmin")
	defer span.End()

	if err := errors.Join(notBlank("email", in.Email), notBlank("org", in.Org), validation.Struct(in)); err != nil {
		return nil, err
	}

	var admin *types.Admin
	err := s.mutate(ctx, user, projectID, func(ctx context.Context) error {
		current, err := s.storage.GetAdmin(ctx, projectID, id)
		if err != nil {
			return err
		}

		if err := s.storage.UpdateAdmin(ctx, current, applyAdmin(current, in)); err != nil {
			return err
		}

		admin = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return admin, nil
}

func (s *Service) DeleteAdmin(ctx context.Context, user *types.User, projectID, id string) error {
	ctx, span := s.tracer.Start(ctx, "projects.Service.DeleteAdmin")
	defer span.End()

	return s.mutate(ctx, user, projectID, func(ctx context.Context) error {
		return s.storage.DeleteAdmin(ctx, projectID, id)
	})
}

func notBlank(field string, v *string) error {
	if v == nil {
		return nil
	}
	return validation.Required(field, v)
}

func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}

func applyProject(p *types.Project, in *ProjectInput) []string {
	paths := make([]string, 0)

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
		paths = append(paths, "name")
	}
	if in.Description != nil {
		p.Description = *in.Description
		paths = append(paths, "description")
	}
	if in.Scheme != nil {
		p.Scheme = *in.Scheme
		paths = append(paths, "scheme")
	}
	if in.ServerName != nil {
		p.ServerName = *in.ServerName
		paths = append(paths, "server_name")
	}
	if in.HAMode != nil {
		p.HAMode = *in.HAMode
		paths = append(paths, "ha_mode")
	}
	if in.Frozen != nil {
		p.Frozen = *in.Frozen
		paths = append(paths, "frozen")
	}
	if in.Public != nil {
		p.Public = *in.Public
		paths = append(paths, "public")
	}

	return paths
}

func applyServer(v *types.Server, in *ServerInput) []string {
	paths := make([]string, 0)

	if in.Name != nil {
		v.Name = strings.TrimSpace(*in.Name)
		paths = append(paths, "name")
	}
	if in.Org != nil {
		v.Org = strings.TrimSpace(*in.Org)
		paths = append(paths, "org")
	}
	if in.FedLearnPort != nil {
		v.FedLearnPort = *in.FedLearnPort
		paths = append(paths, "fed_learn_port")
	}
	if in.AdminPort != nil {
		v.AdminPort = *in.AdminPort
		paths = append(paths, "admin_port")
	}
	if in.ConnectionSecurity != nil {
		v.ConnectionSecurity = *in.ConnectionSecurity
		if v.ConnectionSecurity == "none" {
			v.ConnectionSecurity = types.ConnectionClear
		}
		paths = append(paths, "connection_security")
	}
	if in.ApprovalState != nil {
		v.ApprovalState = *in.ApprovalState
		paths = append(paths, "approval_state")
	}

	return paths
}

func applyClient(v *types.Client, in *ClientInput) []string {
	paths := make([]string, 0)

	if in.Name != nil {
		v.Name = strings.TrimSpace(*in.Name)
		paths = append(paths, "name")
	}
	if in.Org != nil {
		v.Org = strings.TrimSpace(*in.Org)
		paths = append(paths, "org")
	}
	if in.Description != nil {
		v.Description = *in.Description
		paths = append(paths, "description")
	}
	if in.NumGPUs != nil {
		v.NumGPUs = *in.NumGPUs
		paths = append(paths, "num_gpus")
	}
	if in.GPUMemory != nil {
		v.GPUMemoryGiB = *in.GPUMemory
		paths = append(paths, "gpu_memory_gib")
	}
	if in.ApprovalState != nil {
		v.ApprovalState = *in.ApprovalState
		paths = append(paths, "approval_state")
	}

	return paths
}

func applyAdmin(v *types.Admin, in *AdminInput) []string {
	paths := make([]string, 0)

	if in.Email != nil {
		v.Email = strings.ToLower(strings.TrimSpace(*in.Email))
		paths = append(paths, "email")
	}
	if in.Org != nil {
		v.Org = strings.TrimSpace(*in.Org)
		paths = append(paths, "org")
	}
	if in.Role != nil {
		v.Role = *in.Role
		paths = append(paths, "role")
	}
	if in.ApprovalState != nil {
		v.ApprovalState = *in.ApprovalState
		paths = append(paths, "approval_state")
	}

	return paths
}

func NewService(
	storage StorageInterface,
	tx TxInterface,
	authz AuthorizerInterface,
	provisioner ProvisionerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		tx:          tx,
		authz:       authz,
		provisioner: provisioner,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}
