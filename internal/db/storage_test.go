// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
)

func newMockClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	logger := logging.NewNoopLogger()
	return NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func touchProject(ctx context.Context, c *DBClient) error {
	_, err := c.Statement(ctx).
		Update("projects").
		Set("name", "renamed").
		Where("id = ?", "p1").
		ExecContext(ctx)
	return err
}

func TestWithTxCommits(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE projects").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		return touchProject(ctx, c)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	c, mock := newMockClient(t)
	fnErr := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE projects").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if err := touchProject(ctx, c); err != nil {
			return err
		}
		return fnErr
	})
	if !errors.Is(err, fnErr) {
		t.Fatalf("expected %v, got %v", fnErr, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTxWithoutStatementsNeverBegins(t *testing.T) {
	c, mock := newMockClient(t)

	if err := c.WithTx(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWithTxJoinsOuterTransaction(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE projects").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE projects").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if err := touchProject(ctx, c); err != nil {
			return err
		}
		return c.WithTx(ctx, func(inner context.Context) error {
			if !InTx(inner) {
				t.Error("inner context should carry the outer transaction")
			}
			return touchProject(inner, c)
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		status     int
		setupMocks func(sqlmock.Sqlmock)
	}{
		{
			name:   "read only request runs without transaction",
			method: http.MethodGet,
			status: http.StatusOK,
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE projects").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "successful mutation commits",
			method: http.MethodPost,
			status: http.StatusCreated,
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE projects").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:   "failed mutation rolls back",
			method: http.MethodPut,
			status: http.StatusForbidden,
			setupMocks: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE projects").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectRollback()
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, mock := newMockClient(t)
			test.setupMocks(mock)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if err := touchProject(r.Context(), c); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				w.WriteHeader(test.status)
			})

			rr := httptest.NewRecorder()
			TransactionMiddleware(c, logging.NewNoopLogger())(handler).ServeHTTP(rr, httptest.NewRequest(test.method, "/api/v1/projects", nil))

			if rr.Code != test.status {
				t.Errorf("expected status %d, got %d", test.status, rr.Code)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer sqlDB.Close()

	logger := logging.NewNoopLogger()
	c := NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	mock.ExpectPing()
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	if err := c.Ping(context.Background()); err == nil {
		t.Error("expected ping error")
	}
}
