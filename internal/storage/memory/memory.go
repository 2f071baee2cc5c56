// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package memory keeps the dashboard state in process memory. It honours the
// same uniqueness and cascade rules as the PostgreSQL schema and returns the
// storage sentinel errors, which makes it usable in place of a database in
// tests and local runs. Transactions are not isolated and never roll back.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

type Store struct {
	mu sync.RWMutex

	users        map[string]*types.User
	projects     map[string]*types.Project
	servers      map[string]*types.Server
	clients      map[string]*types.Client
	admins       map[string]*types.Admin
	applications map[string]*types.UserApplication

	now func() time.Time
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

func notFound(what string) error {
	return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
}

// WithTx runs fn directly.
func (s *Store) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) CreateUser(_ context.Context, u *types.User) (*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return nil, fmt.Errorf("user: %w", storage.ErrDuplicateKey)
		}
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	c := *u
	c.ID = id
	c.CreatedAt = s.now()
	s.users[id] = &c

	out := c
	return &out, nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	out := *u
	return &out, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, notFound("user")
}

func (s *Store) ListUsers(context.Context) ([]*types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*types.User, 0, len(s.users))
	for _, u := range s.users {
		out := *u
		users = append(users, &out)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (s *Store) CountUsers(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users), nil
}

func (s *Store) SetUserApprovalState(_ context.Context, id string, state types.ApprovalState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return notFound("user")
	}
	u.ApprovalState = state
	return nil
}

func (s *Store) IncrementUserDownloads(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return notFound("user")
	}
	u.DownloadCount++
	return nil
}

func (s *Store) withCreator(p *types.Project) *types.Project {
	out := *p
	if u, ok := s.users[p.CreatedBy]; ok {
		out.CreatorName = u.Name
		out.CreatorEmail = u.Email
	}
	return &out
}

func (s *Store) CreateProject(_ context.Context, p *types.Project) (*types.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[p.CreatedBy]; !ok {
		return nil, fmt.Errorf("project: %w", storage.ErrForeignKeyViolation)
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	c := *p
	c.ID = id
	c.CreatedAt = s.now()
	c.UpdatedAt = c.CreatedAt
	c.CreatorName, c.CreatorEmail = "", ""
	s.projects[id] = &c

	out := c
	return &out, nil
}

func (s *Store) GetProjectByID(_ context.Context, id string) (*types.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, notFound("project")
	}
	return s.withCreator(p), nil
}

func (s *Store) ListProjects(context.Context) ([]*types.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]*types.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, s.withCreator(p))
	}
	// newest first, as the database does
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID > projects[j].ID })

	return projects, nil
}

func (s *Store) UpdateProject(_ context.Context, p *types.Project, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.projects[p.ID]
	if !ok {
		return notFound("project")
	}
	if len(paths) == 0 {
		return nil
	}

	for _, path := range paths {
		switch path {
		case "name":
			existing.Name = p.Name
		case "description":
			existing.Description = p.Description
		case "scheme":
			existing.Scheme = p.Scheme
		case "server_name":
			existing.ServerName = p.ServerName
		case "ha_mode":
			existing.HAMode = p.HAMode
		case "frozen":
			existing.Frozen = p.Frozen
		case "public":
			existing.Public = p.Public
		}
	}
	existing.UpdatedAt = s.now()

	return nil
}

func (s *Store) TouchProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return notFound("project")
	}
	p.UpdatedAt = s.now()
	return nil
}

// DeleteProject removes the project with its participants and applications.
func (s *Store) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return notFound("project")
	}
	delete(s.projects, id)

	for k, v := range s.servers {
		if v.ProjectID == id {
			delete(s.servers, k)
		}
	}
	for k, v := range s.clients {
		if v.ProjectID == id {
			delete(s.clients, k)
		}
	}
	for k, v := range s.admins {
		if v.ProjectID == id {
			delete(s.admins, k)
		}
	}
	for k, v := range s.applications {
		if v.ProjectID == id {
			delete(s.applications, k)
		}
	}

	return nil
}

func (s *Store) CreateApplication(_ context.Context, a *types.UserApplication) (*types.UserApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[a.UserID]; !ok {
		return nil, fmt.Errorf("application: %w", storage.ErrForeignKeyViolation)
	}
	if _, ok := s.projects[a.ProjectID]; !ok {
		return nil, fmt.Errorf("application: %w", storage.ErrForeignKeyViolation)
	}
	for _, existing := range s.applications {
		if existing.UserID == a.UserID && existing.ProjectID == a.ProjectID {
			return nil, fmt.Errorf("application: %w", storage.ErrDuplicateKey)
		}
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	c := *a
	c.ID = id
	c.CreatedAt = s.now()
	s.applications[id] = &c

	out := c
	return &out, nil
}

func (s *Store) GetApplicationByID(_ context.Context, id string) (*types.UserApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, notFound("application")
	}
	out := *a
	return &out, nil
}

func (s *Store) ListApplicationsByProject(_ context.Context, projectID, status string) ([]*types.UserApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	applications := make([]*types.UserApplication, 0)
	for _, a := range s.applications {
		if a.ProjectID != projectID || (status != "" && a.Status != status) {
			continue
		}

		out := *a
		if u, ok := s.users[a.UserID]; ok {
			out.ApplicantName = u.Name
			out.ApplicantEmail = u.Email
			out.ApplicantOrganization = u.Organization
		}
		applications = append(applications, &out)
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID > applications[j].ID })

	return applications, nil
}

func (s *Store) ReviewApplication(_ context.Context, id, status, reviewerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return notFound("application")
	}
	if a.Status != types.ApplicationPending {
		return fmt.Errorf("application %s is not pending: %w", id, types.ErrConflict)
	}

	now := s.now()
	a.Status = status
	a.ReviewedBy = reviewerID
	a.ReviewedAt = &now

	return nil
}

func NewStore() *Store {
	return &Store{
		users:        make(map[string]*types.User),
		projects:     make(map[string]*types.Project),
		servers:      make(map[string]*types.Server),
		clients:      make(map[string]*types.Client),
		admins:       make(map[string]*types.Admin),
		applications: make(map[string]*types.UserApplication),
		now:          time.Now,
	}
}

var _ storage.StorageInterface = (*Store)(nil)
