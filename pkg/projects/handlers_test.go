// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/storage"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/pkg/authentication"
)

func newTestRouter(svc ServiceInterface, user *types.User) http.Handler {
	logger := logging.NewNoopLogger()

	r := chi.NewRouter()
	if user != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(authentication.WithUser(req.Context(), user)))
			})
		})
	}
	NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(r)
	return r
}

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		user           *types.User
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "list projects",
			method: http.MethodGet,
			path:   "/projects",
			user:   owner,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListProjects(gomock.Any()).Return([]*types.Project{{ID: "p1", Name: "Demo"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"projects":[{"id":"p1"`,
		},
		{
			name:   "create project",
			method: http.MethodPost,
			path:   "/projects",
			body:   `{"name":"Demo"}`,
			user:   owner,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateProject(gomock.Any(), owner, &ProjectInput{Name: ptr("Demo")}).Return(&types.Project{ID: "p1"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"project_id":"p1"`,
		},
		{
			name:           "create project without user",
			method:         http.MethodPost,
			path:           "/projects",
			body:           `{"name":"Demo"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "get missing project",
			method: http.MethodGet,
			path:   "/projects/p9",
			user:   owner,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetProject(gomock.Any(), "p9").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "get project detail",
			method: http.MethodGet,
			path:   "/projects/p1",
			user:   owner,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetProject(gomock.Any(), "p1").Return(&types.ProjectDetail{
					Project: types.ProjectSummary{Project: &types.Project{ID: "p1"}, Provisioned: true},
					Servers: []*types.Server{},
					Clients: []*types.Client{},
					Admins:  []*types.Admin{},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"provisioned":true`,
		},
		{
			name:   "update forbidden",
			method: http.MethodPut,
			path:   "/projects/p1",
			body:   `{"name":"x"}`,
			user:   stranger,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateProject(gomock.Any(), stranger, "p1", gomock.Any()).Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "add server",
			method: http.MethodPost,
			path:   "/projects/p1/servers",
			body:   `{"name":"fl.example.com","org":"acme"}`,
			user:   owner,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().AddServer(gomock.Any(), owner, "p1", gomock.Any()).Return(&types.Server{ID: "s1"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"server_id":"s1"`,
		},
		{
			name:   "add client to frozen project",
			method: http.MethodPost,
			path:   "/projects/p1/clients",
			body:   `{"name":"site-1","org":"acme"}`,
			user:   owner,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().AddClient(gomock.Any(), owner, "p1", gomock.Any()).Return(nil, types.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "update admin",
			method: http.MethodPut,
			path:   "/projects/p1/admins/a1",
			body:   `{"role":"lead"}`,
			user:   owner,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateAdmin(gomock.Any(), owner, "p1", "a1", &AdminInput{Role: ptr("lead")}).Return(&types.Admin{ID: "a1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Admin updated successfully",
		},
		{
			name:   "delete client",
			method: http.MethodDelete,
			path:   "/projects/p1/clients/c1",
			user:   owner,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteClient(gomock.Any(), owner, "p1", "c1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Client deleted successfully",
		},
		{
			name:   "delete project",
			method: http.MethodDelete,
			path:   "/projects/p1",
			user:   owner,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteProject(gomock.Any(), owner, "p1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			method:         http.MethodPost,
			path:           "/projects/p1/admins",
			body:           `[`,
			user:           owner,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			test.setupMocks(svc)

			req := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			w := httptest.NewRecorder()
			newTestRouter(svc, test.user).ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}
			if test.expectedBody != "" && !strings.Contains(w.Body.String(), test.expectedBody) {
				t.Errorf("expected body to contain %q, got %s", test.expectedBody, w.Body.String())
			}
			if w.Code >= http.StatusBadRequest {
				var body map[string]any
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["message"] == nil {
					t.Errorf("expected error body, got %s", w.Body.String())
				}
			}
		})
	}
}
