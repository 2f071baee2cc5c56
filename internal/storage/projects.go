// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

var projectColumns = []string{
	"id", "name", "description", "api_version", "scheme", "server_name",
	"ha_mode", "frozen", "public", "created_by", "created_at", "updated_at",
}

func scanProject(row scanner, withCreator bool) (*types.Project, error) {
	p := new(types.Project)
	dest := []any{
		&p.ID, &p.Name, &p.Description, &p.APIVersion, &p.Scheme, &p.ServerName,
		&p.HAMode, &p.Frozen, &p.Public, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	}
	if withCreator {
		dest = append(dest, &p.CreatorName, &p.CreatorEmail)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Storage) selectProjects(ctx context.Context) sq.SelectBuilder {
	cols := append(prefixed("p", projectColumns), "COALESCE(u.name, '')", "COALESCE(u.email, '')")

	return s.db.Statement(ctx).
		Select(cols...).
		From("projects p").
		LeftJoin("users u ON u.id = p.created_by")
}

func (s *Storage) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("projects").
		Columns("id", "name", "description", "api_version", "scheme", "server_name", "ha_mode", "frozen", "public", "created_by").
		Values(id, p.Name, p.Description, p.APIVersion, p.Scheme, p.ServerName, p.HAMode, p.Frozen, p.Public, p.CreatedBy).
		Suffix("RETURNING " + columnList(projectColumns)).
		QueryRowContext(ctx)

	created, err := scanProject(row, false)
	if err != nil {
		return nil, wrapWriteError(err, "project")
	}

	return created, nil
}

func (s *Storage) GetProjectByID(ctx context.Context, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectByID")
	defer span.End()

	row := s.selectProjects(ctx).
		Where(sq.Eq{"p.id": id}).
		QueryRowContext(ctx)

	p, err := scanProject(row, true)
	if err != nil {
		return nil, wrapReadError(err, "project")
	}

	return p, nil
}

func (s *Storage) ListProjects(ctx context.Context) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjects")
	defer span.End()

	rows, err := s.selectProjects(ctx).
		OrderBy("p.created_at DESC", "p.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*types.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// UpdateProject follows PATCH semantics: only the fields named in paths
// are written. created_by and api_version are never updatable.
func (s *Storage) UpdateProject(ctx context.Context, p *types.Project, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProject")
	defer span.End()

	set := updateMap(paths, map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"scheme":      p.Scheme,
		"server_name": p.ServerName,
		"ha_mode":     p.HAMode,
		"frozen":      p.Frozen,
		"public":      p.Public,
	})
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("projects").
		SetMap(set).
		Where(sq.Eq{"id": p.ID}).
		ExecContext(ctx)
	if err != nil {
		return wrapWriteError(err, "project")
	}

	return checkAffected(res, "project")
}

// TouchProject bumps updated_at so existing provisioning output reads as stale.
func (s *Storage) TouchProject(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchProject")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("projects").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch project: %w", err)
	}

	return checkAffected(res, "project")
}

// DeleteProject removes the project; servers, clients, admins and
// applications go with it through ON DELETE CASCADE.
func (s *Storage) DeleteProject(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProject")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("projects").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return checkAffected(res, "project")
}
