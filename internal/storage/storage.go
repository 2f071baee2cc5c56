// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/provisioning-dashboard/internal/db"
	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

type scanner interface {
	Scan(dest ...any) error
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

func columnList(cols []string) string {
	return strings.Join(cols, ", ")
}

// prefixed qualifies columns with a table alias.
func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}

// checkAffected returns ErrNotFound when a write touched no row.
func checkAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}

// updateMap keeps only the columns named in paths. Unknown paths are ignored.
func updateMap(paths []string, values map[string]any) map[string]any {
	m := make(map[string]any)
	for _, p := range paths {
		if v, ok := values[p]; ok {
			m[p] = v
		}
	}
	return m
}

func (s *Storage) update(ctx context.Context, table, projectID, id string, set map[string]any) error {
	if len(set) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id, "project_id": projectID}).
		ExecContext(ctx)
	if err != nil {
		return wrapWriteError(err, table)
	}

	return checkAffected(res, table)
}

func (s *Storage) delete(ctx context.Context, table, projectID, id string) error {
	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(sq.Eq{"id": id, "project_id": projectID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	return checkAffected(res, table)
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
