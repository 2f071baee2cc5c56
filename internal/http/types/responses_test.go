// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/storage"
	domainTypes "github.com/canonical/provisioning-dashboard/internal/types"
)

func TestNewErrorResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected *ErrorResponse
	}{
		{
			name:     "validation",
			err:      domainTypes.Validationf("name is required"),
			expected: &ErrorResponse{Status: http.StatusBadRequest, Message: "validation error: name is required"},
		},
		{
			name:     "forbidden",
			err:      fmt.Errorf("update project: %w", domainTypes.ErrForbidden),
			expected: &ErrorResponse{Status: http.StatusForbidden, Message: "update project: forbidden"},
		},
		{
			name:     "storage not found",
			err:      fmt.Errorf("project: %w", storage.ErrNotFound),
			expected: &ErrorResponse{Status: http.StatusNotFound, Message: "project: resource not found"},
		},
		{
			name:     "duplicate key",
			err:      fmt.Errorf("user: %w", storage.ErrDuplicateKey),
			expected: &ErrorResponse{Status: http.StatusConflict, Message: "user: duplicate key violation"},
		},
		{
			name:     "conflict",
			err:      domainTypes.ErrConflict,
			expected: &ErrorResponse{Status: http.StatusConflict, Message: "conflict"},
		},
		{
			name:     "unauthorized",
			err:      domainTypes.ErrUnauthorized,
			expected: &ErrorResponse{Status: http.StatusUnauthorized, Message: "unauthorized"},
		},
		{
			name: "provisioning failure surfaces stderr",
			err:  &domainTypes.ProvisioningError{ProjectID: "p1", ExitCode: 2, Stderr: "bad yaml"},
			expected: &ErrorResponse{
				Status:  http.StatusInternalServerError,
				Message: "provisioning project p1 failed with exit code 2: bad yaml",
			},
		},
		{
			name:     "unknown error is hidden",
			err:      errors.New("connection refused to 10.0.0.1"),
			expected: &ErrorResponse{Status: http.StatusInternalServerError, Message: genericErrorMessage},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := NewErrorResponse(test.err)

			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected result: %v, got: %v", test.expected, result)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, domainTypes.ErrForbidden, logging.NewNoopLogger())

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}

	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Status != http.StatusForbidden || body.Message != "forbidden" {
		t.Errorf("unexpected body %+v", body)
	}
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	if err := DecodeJSON(r, &dst); err != nil || dst.Name != "x" {
		t.Fatalf("unexpected result %v %+v", err, dst)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	if err := DecodeJSON(r, &dst); err != nil {
		t.Fatalf("empty body should be accepted, got %v", err)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	if err := DecodeJSON(r, &dst); !errors.Is(err, domainTypes.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
