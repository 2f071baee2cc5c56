// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/types"
)

func TestStoreConstraints(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	u, err := s.CreateUser(ctx, &types.User{Email: "a@x.com", Name: "A"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, &types.User{Email: "a@x.com"})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	_, err = s.CreateProject(ctx, &types.Project{Name: "P", CreatedBy: "nobody"})
	assert.ErrorIs(t, err, storage.ErrForeignKeyViolation)

	p, err := s.CreateProject(ctx, &types.Project{Name: "P", CreatedBy: u.ID})
	require.NoError(t, err)

	got, err := s.GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.CreatorEmail)

	_, err = s.CreateApplication(ctx, &types.UserApplication{UserID: u.ID, ProjectID: p.ID, Status: types.ApplicationPending})
	require.NoError(t, err)
	_, err = s.CreateApplication(ctx, &types.UserApplication{UserID: u.ID, ProjectID: p.ID, Status: types.ApplicationPending})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestStoreParticipants(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	u, err := s.CreateUser(ctx, &types.User{Email: "a@x.com"})
	require.NoError(t, err)
	p, err := s.CreateProject(ctx, &types.Project{Name: "P", CreatedBy: u.ID})
	require.NoError(t, err)
	other, err := s.CreateProject(ctx, &types.Project{Name: "Q", CreatedBy: u.ID})
	require.NoError(t, err)

	srv, err := s.CreateServer(ctx, &types.Server{ProjectID: p.ID, Name: "srv1", FedLearnPort: 8002})
	require.NoError(t, err)

	_, err = s.GetServer(ctx, other.ID, srv.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, s.UpdateServer(ctx, &types.Server{ID: srv.ID, ProjectID: p.ID, FedLearnPort: 9002, Name: "ignored"}, []string{"fed_learn_port"}))
	updated, err := s.GetServer(ctx, p.ID, srv.ID)
	require.NoError(t, err)
	assert.Equal(t, 9002, updated.FedLearnPort)
	assert.Equal(t, "srv1", updated.Name)

	require.NoError(t, s.IncrementParticipantDownloads(ctx, types.KindServer, srv.ID))
	updated, _ = s.GetServer(ctx, p.ID, srv.ID)
	assert.Equal(t, 1, updated.DownloadCount)

	_, err = s.CreateClient(ctx, &types.Client{ProjectID: p.ID, Name: "site-1"})
	require.NoError(t, err)
	_, err = s.CreateAdmin(ctx, &types.Admin{ProjectID: p.ID, Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(ctx, p.ID))

	servers, err := s.ListServers(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, servers)
	clients, _ := s.ListClients(ctx, p.ID)
	assert.Empty(t, clients)
	admins, _ := s.ListAdmins(ctx, p.ID)
	assert.Empty(t, admins)
}

func TestStoreReviewsAnApplicationOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	u, err := s.CreateUser(ctx, &types.User{Email: "a@x.com"})
	require.NoError(t, err)
	p, err := s.CreateProject(ctx, &types.Project{Name: "P", CreatedBy: u.ID})
	require.NoError(t, err)
	a, err := s.CreateApplication(ctx, &types.UserApplication{UserID: u.ID, ProjectID: p.ID, Status: types.ApplicationPending})
	require.NoError(t, err)

	require.NoError(t, s.ReviewApplication(ctx, a.ID, types.ApplicationApproved, u.ID))
	assert.ErrorIs(t, s.ReviewApplication(ctx, a.ID, types.ApplicationRejected, u.ID), types.ErrConflict)

	got, err := s.GetApplicationByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationApproved, got.Status)
}
