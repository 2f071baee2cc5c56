// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

var userColumns = []string{
	"id", "email", "name", "password_hash", "role", "organization",
	"approval_state", "download_count", "active", "created_at",
}

func scanUser(row scanner) (*types.User, error) {
	u := new(types.User)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.Organization,
		&u.ApprovalState, &u.DownloadCount, &u.Active, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "name", "password_hash", "role", "organization", "approval_state", "active").
		Values(id, u.Email, u.Name, u.PasswordHash, u.Role, u.Organization, u.ApprovalState, u.Active).
		Suffix("RETURNING " + columnList(userColumns)).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		return nil, wrapWriteError(err, "user")
	}

	return created, nil
}

func (s *Storage) getUser(ctx context.Context, where sq.Eq) (*types.User, error) {
	row := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		Where(where).
		QueryRowContext(ctx)

	u, err := scanUser(row)
	if err != nil {
		return nil, wrapReadError(err, "user")
	}
	return u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	return s.getUser(ctx, sq.Eq{"email": email})
}

func (s *Storage) ListUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns...).
		From("users").
		OrderBy("created_at", "id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

func (s *Storage) CountUsers(ctx context.Context) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUsers")
	defer span.End()

	var n int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("users").
		QueryRowContext(ctx).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return n, nil
}

func (s *Storage) SetUserApprovalState(ctx context.Context, id string, state types.ApprovalState) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetUserApprovalState")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("approval_state", state).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user approval state: %w", err)
	}

	return checkAffected(res, "user")
}

func (s *Storage) IncrementUserDownloads(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.IncrementUserDownloads")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("users").
		Set("download_count", sq.Expr("download_count + 1")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment user downloads: %w", err)
	}

	return nil
}
