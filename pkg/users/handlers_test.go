// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

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
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/pkg/authentication"
)

func newTestRouter(svc ServiceInterface, user *types.User) http.Handler {
	logger := logging.NewNoopLogger()
	api := NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	r := chi.NewRouter()
	api.RegisterPublicEndpoints(r)
	r.Group(func(r chi.Router) {
		if user != nil {
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					next.ServeHTTP(w, req.WithContext(authentication.WithUser(req.Context(), user)))
				})
			})
		}
		api.RegisterEndpoints(r)
	})
	return r
}

func TestAPI_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "created",
			body: `{"email":"jane@example.com","name":"Jane","password":"secret1","organization":"acme"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(&types.User{ID: "u1"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"user_id":"u1"`,
		},
		{
			name: "conflict",
			body: `{"email":"jane@example.com","name":"Jane","password":"secret1","organization":"acme"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, types.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "malformed body",
			body:           `{"email":`,
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

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(test.body))
			w := httptest.NewRecorder()
			newTestRouter(svc, nil).ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}
			if test.expectedBody != "" && !strings.Contains(w.Body.String(), test.expectedBody) {
				t.Errorf("expected body to contain %q, got %s", test.expectedBody, w.Body.String())
			}
		})
	}
}

func TestAPI_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().Login(gomock.Any(), &LoginRequest{Email: "jane@example.com", Password: "secret1"}).
		Return(&LoginResponse{AccessToken: "tok", User: &types.User{ID: "u1", Email: "jane@example.com", PasswordHash: "hash"}}, nil)
	svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, types.ErrUnauthorized)

	router := newTestRouter(svc, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"jane@example.com","password":"secret1"}`)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["access_token"] != "tok" {
		t.Errorf("unexpected token %v", body["access_token"])
	}
	if strings.Contains(w.Body.String(), "hash") {
		t.Error("password hash leaked into response")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"jane@example.com","password":"bad"}`)))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAPI_ListAndMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)

	me := &types.User{ID: "u1", Email: "jane@example.com"}
	router := newTestRouter(svc, me)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"users":[]`) {
		t.Fatalf("unexpected list response %d %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"u1"`) {
		t.Fatalf("unexpected me response %d %s", w.Code, w.Body.String())
	}
}

func TestAPI_MeWithoutUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := httptest.NewRecorder()
	newTestRouter(NewMockServiceInterface(ctrl), nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
