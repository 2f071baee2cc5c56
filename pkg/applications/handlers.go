// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import (
	"fmt"
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

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/projects/{id}/apply", a.apply)
	r.Get("/projects/{id}/applications", a.list)
	r.Post("/applications/{id}/approve", a.review)
}

func (a *API) apply(w http.ResponseWriter, r *http.Request) {
	user, ok := authentication.GetUser(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrUnauthorized, a.logger)
		return
	}

	in := new(ApplyRequest)
	if err := httptypes.DecodeJSON(r, in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	application, err := a.service.Apply(r.Context(), user, chi.URLParam(r, "id"), in)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, messageResponse{
		Message:       "Application submitted successfully",
		ApplicationID: application.ID,
	}, a.logger)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	user, ok := authentication.GetUser(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrUnauthorized, a.logger)
		return
	}

	applications, err := a.service.ListApplications(r.Context(), user, chi.URLParam(r, "id"), r.URL.Query().Get("status"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if applications == nil {
		applications = []*types.UserApplication{}
	}

	httptypes.WriteJSON(w, http.StatusOK, listResponse{Applications: applications}, a.logger)
}

func (a *API) review(w http.ResponseWriter, r *http.Request) {
	user, ok := authentication.GetUser(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrUnauthorized, a.logger)
		return
	}

	in := new(reviewRequest)
	if err := httptypes.DecodeJSON(r, in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	application, err := a.service.Review(r.Context(), user, chi.URLParam(r, "id"), in.Action)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, messageResponse{
		Message:       fmt.Sprintf("Application %s successfully", application.Status),
		ApplicationID: application.ID,
	}, a.logger)
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
