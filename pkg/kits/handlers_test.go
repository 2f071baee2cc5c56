// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kits

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	startupkits "github.com/canonical/provisioning-dashboard/internal/kits"
	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/provisioning"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/pkg/authentication"
)

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		setupMocks      func(*MockServiceInterface)
		expectedStatus  int
		expectedBody    string
		expectedHeaders map[string]string
	}{
		{
			name:   "provision",
			method: http.MethodPost,
			path:   "/provision/p1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), owner, "p1", false).Return(provisioned, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"workspace":"/work/project_p1/prod_00"`,
		},
		{
			name:   "forced provision",
			method: http.MethodPost,
			path:   "/provision/p1?force=true",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), owner, "p1", true).Return(provisioned, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Project provisioned successfully",
		},
		{
			name:           "bad force flag",
			method:         http.MethodPost,
			path:           "/provision/p1?force=maybe",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "provisioning tool failure",
			method: http.MethodPost,
			path:   "/provision/p1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Provision(gomock.Any(), owner, "p1", false).Return(nil, &types.ProvisioningError{ProjectID: "p1", ExitCode: 2, Stderr: "invalid project.yml"})
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "invalid project.yml",
		},
		{
			name:   "status",
			method: http.MethodGet,
			path:   "/status/p1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Status(gomock.Any(), "p1").Return(&provisioning.Status{State: provisioning.StateNotProvisioned}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"not_provisioned"`,
		},
		{
			name:   "download one kit",
			method: http.MethodGet,
			path:   "/download/client/p1/c1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Download(gomock.Any(), owner, "client", "p1", "c1").Return(&startupkits.Kit{Filename: "client_c1_startup_kit.zip", Data: []byte("PK")}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "PK",
			expectedHeaders: map[string]string{
				"Content-Type":        "application/zip",
				"Content-Disposition": `attachment; filename="client_c1_startup_kit.zip"`,
				"Content-Length":      "2",
			},
		},
		{
			name:   "download all",
			method: http.MethodGet,
			path:   "/download/all/p1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Download(gomock.Any(), owner, "all", "p1", "").Return(&startupkits.Kit{Filename: "project_p1_startup_kits.zip"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedHeaders: map[string]string{
				"Content-Disposition": `attachment; filename="project_p1_startup_kits.zip"`,
			},
		},
		{
			name:   "download missing kit",
			method: http.MethodGet,
			path:   "/download/server/p1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Download(gomock.Any(), owner, "server", "p1", "").Return(nil, types.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			test.setupMocks(svc)

			logger := logging.NewNoopLogger()
			r := chi.NewRouter()
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					next.ServeHTTP(w, req.WithContext(authentication.WithUser(req.Context(), owner)))
				})
			})
			NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(r)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(test.method, test.path, nil))

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}
			if test.expectedBody != "" && !strings.Contains(w.Body.String(), test.expectedBody) {
				t.Errorf("expected body to contain %q, got %s", test.expectedBody, w.Body.String())
			}
			for k, v := range test.expectedHeaders {
				if got := w.Header().Get(k); got != v {
					t.Errorf("expected header %s=%q, got %q", k, v, got)
				}
			}
		})
	}
}
