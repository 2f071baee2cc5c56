// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kits

import (
	"fmt"
	"net/http"
	"strconv"

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
	r.Post("/provision/{id}", a.provision)
	r.Get("/status/{id}", a.status)
	r.Get("/download/{kind}/{projectID}", a.download)
	r.Get("/download/{kind}/{projectID}/{itemID}", a.download)
}

func (a *API) provision(w http.ResponseWriter, r *http.Request) {
	user, ok := authentication.GetUser(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrUnauthorized, a.logger)
		return
	}

	force := false
	if v := r.URL.Query().Get("force"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			httptypes.WriteError(w, types.Validationf("invalid force flag %q", v), a.logger)
			return
		}
		force = parsed
	}

	result, err := a.service.Provision(r.Context(), user, chi.URLParam(r, "id"), force)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, provisionResponse{
		Message:       "Project provisioned successfully",
		Workspace:     result.OutputRoot,
		Cached:        result.Cached,
		Warnings:      result.Warnings,
		ProvisionedAt: result.ProvisionedAt,
	}, a.logger)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	status, err := a.service.Status(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, status, a.logger)
}

func (a *API) download(w http.ResponseWriter, r *http.Request) {
	user, ok := authentication.GetUser(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrUnauthorized, a.logger)
		return
	}

	kit, err := a.service.Download(
		r.Context(),
		user,
		chi.URLParam(r, "kind"),
		chi.URLParam(r, "projectID"),
		chi.URLParam(r, "itemID"),
	)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", kit.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(kit.Data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(kit.Data); err != nil {
		a.logger.Errorf("failed to write %s: %v", kit.Filename, err)
	}
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
