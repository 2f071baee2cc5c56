// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/provisioning-dashboard/internal/http/types"
	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/version"
)

const pingTimeout = 2 * time.Second

type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

type BuildInfo struct {
	Version string `json:"version"`
	Name    string `json:"name"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/health", a.health)
	r.Get("/version", a.version)
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	tags := map[string]string{"component": "database"}

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("health check failed: %v", err)
		_ = a.monitor.SetDependencyAvailability(tags, 0)

		httptypes.WriteJSON(w, http.StatusInternalServerError, Health{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    "database unreachable",
		}, a.logger)
		return
	}

	_ = a.monitor.SetDependencyAvailability(tags, 1)

	httptypes.WriteJSON(w, http.StatusOK, Health{Status: "healthy", Database: "connected"}, a.logger)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, BuildInfo{
		Version: version.Version,
		Name:    a.monitor.GetService(),
	}, a.logger)
}

func NewAPI(
	db PingerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		db:      db,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
