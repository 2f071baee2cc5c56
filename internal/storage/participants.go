// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

var (
	serverColumns = []string{
		"id", "project_id", "name", "org", "fed_learn_port", "admin_port",
		"connection_security", "approval_state", "download_count", "created_at",
	}
	clientColumns = []string{
		"id", "project_id", "name", "org", "description", "num_gpus",
		"gpu_memory_gib", "approval_state", "download_count", "created_at",
	}
	adminColumns = []string{
		"id", "project_id", "email", "org", "role",
		"approval_state", "download_count", "created_at",
	}
)

var participantTables = map[types.ParticipantKind]string{
	types.KindServer: "servers",
	types.KindClient: "clients",
	types.KindAdmin:  "admins",
}

func scanServer(row scanner) (*types.Server, error) {
	v := new(types.Server)
	err := row.Scan(
		&v.ID, &v.ProjectID, &v.Name, &v.Org, &v.FedLearnPort, &v.AdminPort,
		&v.ConnectionSecurity, &v.ApprovalState, &v.DownloadCount, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func scanClient(row scanner) (*types.Client, error) {
	v := new(types.Client)
	err := row.Scan(
		&v.ID, &v.ProjectID, &v.Name, &v.Org, &v.Description, &v.NumGPUs,
		&v.GPUMemoryGiB, &v.ApprovalState, &v.DownloadCount, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func scanAdmin(row scanner) (*types.Admin, error) {
	v := new(types.Admin)
	err := row.Scan(
		&v.ID, &v.ProjectID, &v.Email, &v.Org, &v.Role,
		&v.ApprovalState, &v.DownloadCount, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// listByProject runs a select ordered by (created_at, id), the order that
// makes the first server of a project its primary.
func listByProject[T any](ctx context.Context, s *Storage, table string, cols []string, projectID string, scan func(scanner) (*T, error)) ([]*T, error) {
	rows, err := s.db.Statement(ctx).
		Select(cols...).
		From(table).
		Where(sq.Eq{"project_id": projectID}).
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]*T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		out = append(out, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", table, err)
	}

	return out, nil
}

func getByProject[T any](ctx context.Context, s *Storage, table string, cols []string, projectID, id string, scan func(scanner) (*T, error)) (*T, error) {
	row := s.db.Statement(ctx).
		Select(cols...).
		From(table).
		Where(sq.Eq{"id": id, "project_id": projectID}).
		QueryRowContext(ctx)

	v, err := scan(row)
	if err != nil {
		return nil, wrapReadError(err, table)
	}
	return v, nil
}

func (s *Storage) CreateServer(ctx context.Context, v *types.Server) (*types.Server, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateServer")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("servers").
		Columns("id", "project_id", "name", "org", "fed_learn_port", "admin_port", "connection_security", "approval_state").
		Values(id, v.ProjectID, v.Name, v.Org, v.FedLearnPort, v.AdminPort, v.ConnectionSecurity, v.ApprovalState).
		Suffix("RETURNING " + columnList(serverColumns)).
		QueryRowContext(ctx)

	created, err := scanServer(row)
	if err != nil {
		return nil, wrapWriteError(err, "server")
	}
	return created, nil
}

func (s *Storage) GetServer(ctx context.Context, projectID, id string) (*types.Server, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetServer")
	defer span.End()

	return getByProject(ctx, s, "servers", serverColumns, projectID, id, scanServer)
}

func (s *Storage) ListServers(ctx context.Context, projectID string) ([]*types.Server, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListServers")
	defer span.End()

	return listByProject(ctx, s, "servers", serverColumns, projectID, scanServer)
}

func (s *Storage) UpdateServer(ctx context.Context, v *types.Server, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateServer")
	defer span.End()

	return s.update(ctx, "servers", v.ProjectID, v.ID, updateMap(paths, map[string]any{
		"name":                v.Name,
		"org":                 v.Org,
		"fed_learn_port":      v.FedLearnPort,
		"admin_port":          v.AdminPort,
		"connection_security": v.ConnectionSecurity,
		"approval_state":      v.ApprovalState,
	}))
}

func (s *Storage) DeleteServer(ctx context.Context, projectID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteServer")
	defer span.End()

	return s.delete(ctx, "servers", projectID, id)
}

func (s *Storage) CreateClient(ctx context.Context, v *types.Client) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateClient")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("clients").
		Columns("id", "project_id", "name", "org", "description", "num_gpus", "gpu_memory_gib", "approval_state").
		Values(id, v.ProjectID, v.Name, v.Org, v.Description, v.NumGPUs, v.GPUMemoryGiB, v.ApprovalState).
		Suffix("RETURNING " + columnList(clientColumns)).
		QueryRowContext(ctx)

	created, err := scanClient(row)
	if err != nil {
		return nil, wrapWriteError(err, "client")
	}
	return created, nil
}

func (s *Storage) GetClient(ctx context.Context, projectID, id string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClient")
	defer span.End()

	return getByProject(ctx, s, "clients", clientColumns, projectID, id, scanClient)
}

func (s *Storage) ListClients(ctx context.Context, projectID string) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClients")
	defer span.End()

	return listByProject(ctx, s, "clients", clientColumns, projectID, scanClient)
}

func (s *Storage) UpdateClient(ctx context.Context, v *types.Client, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateClient")
	defer span.End()

	return s.update(ctx, "clients", v.ProjectID, v.ID, updateMap(paths, map[string]any{
		"name":           v.Name,
		"org":            v.Org,
		"description":    v.Description,
		"num_gpus":       v.NumGPUs,
		"gpu_memory_gib": v.GPUMemoryGiB,
		"approval_state": v.ApprovalState,
	}))
}

func (s *Storage) DeleteClient(ctx context.Context, projectID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteClient")
	defer span.End()

	return s.delete(ctx, "clients", projectID, id)
}

func (s *Storage) CreateAdmin(ctx context.Context, v *types.Admin) (*types.Admin, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAdmin")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("admins").
		Columns("id", "project_id", "email", "org", "role", "approval_state").
		Values(id, v.ProjectID, v.Email, v.Org, v.Role, v.ApprovalState).
		Suffix("RETURNING " + columnList(adminColumns)).
		QueryRowContext(ctx)

	created, err := scanAdmin(row)
	if err != nil {
		return nil, wrapWriteError(err, "admin")
	}
	return created, nil
}

func (s *Storage) GetAdmin(ctx context.Context, projectID, id string) (*types.Admin, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAdmin")
	defer span.End()

	return getByProject(ctx, s, "admins", adminColumns, projectID, id, scanAdmin)
}

func (s *Storage) ListAdmins(ctx context.Context, projectID string) ([]*types.Admin, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAdmins")
	defer span.End()

	return listByProject(ctx, s, "admins", adminColumns, projectID, scanAdmin)
}

func (s *Storage) UpdateAdmin(ctx context.Context, v *types.Admin, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAdmin")
	defer span.End()

	return s.update(ctx, "admins", v.ProjectID, v.ID, updateMap(paths, map[string]any{
		"email":          v.Email,
		"org":            v.Org,
		"role":           v.Role,
		"approval_state": v.ApprovalState,
	}))
}

func (s *Storage) DeleteAdmin(ctx context.Context, projectID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAdmin")
	defer span.End()

	return s.delete(ctx, "admins", projectID, id)
}

func (s *Storage) IncrementParticipantDownloads(ctx context.Context, kind types.ParticipantKind, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.IncrementParticipantDownloads")
	defer span.End()

	table, ok := participantTables[kind]
	if !ok {
		return fmt.Errorf("unknown participant kind %q", kind)
	}

	res, err := s.db.Statement(ctx).
		Update(table).
		Set("download_count", sq.Expr("download_count + 1")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment %s downloads: %w", table, err)
	}

	return checkAffected(res, table)
}
