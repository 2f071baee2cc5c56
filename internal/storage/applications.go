// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/provisioning-dashboard/internal/types"
)

var applicationColumns = []string{
	"id", "user_id", "project_id", "role", "message", "status",
	"created_at", "reviewed_at", "reviewed_by",
}

func scanApplication(row scanner, withApplicant bool) (*types.UserApplication, error) {
	a := new(types.UserApplication)

	var (
		reviewedAt sql.NullTime
		reviewedBy sql.NullString
	)

	dest := []any{
		&a.ID, &a.UserID, &a.ProjectID, &a.Role, &a.Message, &a.Status,
		&a.CreatedAt, &reviewedAt, &reviewedBy,
	}
	if withApplicant {
		dest = append(dest, &a.ApplicantName, &a.ApplicantEmail, &a.ApplicantOrganization)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if reviewedAt.Valid {
		t := reviewedAt.Time
		a.ReviewedAt = &t
	}
	a.ReviewedBy = reviewedBy.String

	return a, nil
}

// CreateApplication fails with ErrDuplicateKey when the user already applied
// to the project.
func (s *Storage) CreateApplication(ctx context.Context, a *types.UserApplication) (*types.UserApplication, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateApplication")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert("user_applications").
		Columns("id", "user_id", "project_id", "role", "message", "status").
		Values(id, a.UserID, a.ProjectID, a.Role, a.Message, types.ApplicationPending).
		Suffix("RETURNING " + columnList(applicationColumns)).
		QueryRowContext(ctx)

	created, err := scanApplication(row, false)
	if err != nil {
		return nil, wrapWriteError(err, "application")
	}

	return created, nil
}

func (s *Storage) GetApplicationByID(ctx context.Context, id string) (*types.UserApplication, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetApplicationByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(applicationColumns...).
		From("user_applications").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	a, err := scanApplication(row, false)
	if err != nil {
		return nil, wrapReadError(err, "application")
	}

	return a, nil
}

// ListApplicationsByProject returns applications joined with the applicant.
// An empty status lists every application.
func (s *Storage) ListApplicationsByProject(ctx context.Context, projectID, status string) ([]*types.UserApplication, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListApplicationsByProject")
	defer span.End()

	cols := append(prefixed("a", applicationColumns), "u.name", "u.email", "u.organization")

	query := s.db.Statement(ctx).
		Select(cols...).
		From("user_applications a").
		Join("users u ON u.id = a.user_id").
		Where(sq.Eq{"a.project_id": projectID}).
		OrderBy("a.created_at DESC", "a.id")

	if status != "" {
		query = query.Where(sq.Eq{"a.status": status})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	applications := make([]*types.UserApplication, 0)
	for rows.Next() {
		a, err := scanApplication(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}

// ReviewApplication moves a pending application to status. An application
// that is no longer pending, concurrently reviewed included, is a conflict.
func (s *Storage) ReviewApplication(ctx context.Context, id, status, reviewerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReviewApplication")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("user_applications").
		Set("status", status).
		Set("reviewed_at", sq.Expr("NOW()")).
		Set("reviewed_by", reviewerID).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"status": types.ApplicationPending}).
		ExecContext(ctx)
	if err != nil {
		return wrapWriteError(err, "application")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("application %s is not pending: %w", id, types.ErrConflict)
	}
	return nil
}
