// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/provisioning-dashboard/internal/http/types"
	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterPublicEndpoints mounts the routes reachable without a token.
func (a *API) RegisterPublicEndpoints(r chi.Router) {
	r.Post("/users", a.register)
	r.Post("/login", a.login)
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/users", a.list)
	r.Get("/users/me", a.me)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	req := new(RegisterRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	user, err := a.service.Register(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, registerResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	}, a.logger)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	req := new(LoginRequest)
	if err := httptypes.DecodeJSON(r, req); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	resp, err := a.service.Login(r.Context(), req)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, resp, a.logger)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	users, err := a.service.ListUsers(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if users == nil {
		users = []*types.User{}
	}

	httptypes.WriteJSON(w, http.StatusOK, listResponse{Users: users}, a.logger)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	user, ok := authentication.GetUser(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrUnauthorized, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, user, a.logger)
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
