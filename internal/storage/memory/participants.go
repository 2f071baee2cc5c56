// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

// row is implemented by pointers to the participant types.
type row interface {
	*types.Server | *types.Client | *types.Admin
}

func projectOf[T row](v T) string {
	switch p := any(v).(type) {
	case *types.Server:
		return p.ProjectID
	case *types.Client:
		return p.ProjectID
	case *types.Admin:
		return p.ProjectID
	}
	return ""
}

func createdAt[T row](v T) time.Time {
	switch p := any(v).(type) {
	case *types.Server:
		return p.CreatedAt
	case *types.Client:
		return p.CreatedAt
	case *types.Admin:
		return p.CreatedAt
	}
	return time.Time{}
}

func lookup[T row](m map[string]T, projectID, id, what string) (T, error) {
	v, ok := m[id]
	if !ok || projectOf(v) != projectID {
		var zero T
		return zero, notFound(what)
	}
	return v, nil
}

func list[T row](m map[string]T, projectID string, clone func(T) T) []T {
	out := make([]T, 0)
	for _, v := range m {
		if projectOf(v) == projectID {
			out = append(out, clone(v))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return createdAt(out[i]).Before(createdAt(out[j])) })
	return out
}

func (s *Store) checkProject(projectID, what string) error {
	if _, ok := s.projects[projectID]; !ok {
		return fmt.Errorf("%s: %w", what, storage.ErrForeignKeyViolation)
	}
	return nil
}

func cloneServer(v *types.Server) *types.Server { c := *v; return &c }
func cloneClient(v *types.Client) *types.Client { c := *v; return &c }
func cloneAdmin(v *types.Admin) *types.Admin    { c := *v; return &c }

func (s *Store) CreateServer(_ context.Context, v *types.Server) (*types.Server, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkProject(v.ProjectID, "server"); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	c := cloneServer(v)
	c.ID = id
	c.CreatedAt = s.now()
	s.servers[id] = c

	return cloneServer(c), nil
}

func (s *Store) GetServer(_ context.Context, projectID, id string) (*types.Server, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, err := lookup(s.servers, projectID, id, "server")
	if err != nil {
		return nil, err
	}
	return cloneServer(v), nil
}

func (s *Store) ListServers(_ context.Context, projectID string) ([]*types.Server, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return list(s.servers, projectID, cloneServer), nil
}

func (s *Store) UpdateServer(_ context.Context, v *types.Server, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := lookup(s.servers, v.ProjectID, v.ID, "server")
	if err != nil {
		return err
	}

	for _, path := range paths {
		switch path {
		case "name":
			existing.Name = v.Name
		case "org":
			existing.Org = v.Org
		case "fed_learn_port":
			existing.FedLearnPort = v.FedLearnPort
		case "admin_port":
			existing.AdminPort = v.AdminPort
		case "connection_security":
			existing.ConnectionSecurity = v.ConnectionSecurity
		case "approval_state":
			existing.ApprovalState = v.ApprovalState
		}
	}
	return nil
}

func (s *Store) DeleteServer(_ context.Context, projectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := lookup(s.servers, projectID, id, "server"); err != nil {
		return err
	}
	delete(s.servers, id)
	return nil
}

func (s *Store) CreateClient(_ context.Context, v *types.Client) (*types.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkProject(v.ProjectID, "client"); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	c := cloneClient(v)
	c.ID = id
	c.CreatedAt = s.now()
	s.clients[id] = c

	return cloneClient(c), nil
}

func (s *Store) GetClient(_ context.Context, projectID, id string) (*types.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, err := lookup(s.clients, projectID, id, "client")
	if err != nil {
		return nil, err
	}
	return cloneClient(v), nil
}

func (s *Store) ListClients(_ context.Context, projectID string) ([]*types.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return list(s.clients, projectID, cloneClient), nil
}

func (s *Store) UpdateClient(_ context.Context, v *types.Client, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := lookup(s.clients, v.ProjectID, v.ID, "client")
	if err != nil {
		return err
	}

	for _, path := range paths {
		switch path {
		case "name":
			existing.Name = v.Name
		case "org":
			existing.Org = v.Org
		case "description":
			existing.Description = v.Description
		case "num_gpus":
			existing.NumGPUs = v.NumGPUs
		case "gpu_memory_gib":
			existing.GPUMemoryGiB = v.GPUMemoryGiB
		case "approval_state":
			existing.ApprovalState = v.ApprovalState
		}
	}
	return nil
}

func (s *Store) DeleteClient(_ context.Context, projectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := lookup(s.clients, projectID, id, "client"); err != nil {
		return err
	}
	delete(s.clients, id)
	return nil
}

func (s *Store) CreateAdmin(_ context.Context, v *types.Admin) (*types.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkProject(v.ProjectID, "admin"); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	c := cloneAdmin(v)
	c.ID = id
	c.CreatedAt = s.now()
	s.admins[id] = c

	return cloneAdmin(c), nil
}

func (s *Store) GetAdmin(_ context.Context, projectID, id string) (*types.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, err := lookup(s.admins, projectID, id, "admin")
	if err != nil {
		return nil, err
	}
	return cloneAdmin(v), nil
}

func (s *Store) ListAdmins(_ context.Context, projectID string) ([]*types.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return list(s.admins, projectID, cloneAdmin), nil
}

func (s *Store) UpdateAdmin(_ context.Context, v *types.Admin, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := lookup(s.admins, v.ProjectID, v.ID, "admin")
	if err != nil {
		return err
	}

	for _, path := range paths {
		switch path {
		case "email":
			existing.Email = v.Email
		case "org":
			existing.Org = v.Org
		case "role":
			existing.Role = v.Role
		case "approval_state":
			existing.ApprovalState = v.ApprovalState
		}
	}
	return nil
}

func (s *Store) DeleteAdmin(_ context.Context, projectID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := lookup(s.admins, projectID, id, "admin"); err != nil {
		return err
	}
	delete(s.admins, id)
	return nil
}

func (s *Store) IncrementParticipantDownloads(_ context.Context, kind types.ParticipantKind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case types.KindServer:
		if v, ok := s.servers[id]; ok {
			v.DownloadCount++
			return nil
		}
	case types.KindClient:
		if v, ok := s.clients[id]; ok {
			v.DownloadCount++
			return nil
		}
	case types.KindAdmin:
		if v, ok := s.admins[id]; ok {
			v.DownloadCount++
			return nil
		}
	default:
		return fmt.Errorf("unknown participant kind %q", kind)
	}
	return notFound(string(kind))
}
