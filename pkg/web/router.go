// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/provisioning-dashboard/internal/db"
	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/pkg/applications"
	"github.com/canonical/provisioning-dashboard/pkg/kits"
	"github.com/canonical/provisioning-dashboard/pkg/metrics"
	"github.com/canonical/provisioning-dashboard/pkg/projects"
	"github.com/canonical/provisioning-dashboard/pkg/status"
	"github.com/canonical/provisioning-dashboard/pkg/users"
)

const apiPrefix = "/api/v1"

// APIs groups the handlers served under the API prefix.
type APIs struct {
	Users        *users.API
	Projects     *projects.API
	Applications *applications.API
	Kits         *kits.API
}

func NewRouter(
	apis APIs,
	authn func(http.Handler) http.Handler,
	tx db.TxRunnerInterface,
	pinger status.PingerInterface,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	router.Route(apiPrefix, func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(db.TransactionMiddleware(tx, logger))

			metrics.NewAPI(logger).RegisterEndpoints(r)
			status.NewAPI(pinger, tracer, monitor, logger).RegisterEndpoints(r)
			apis.Users.RegisterPublicEndpoints(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authn)

			r.Group(func(r chi.Router) {
				r.Use(db.TransactionMiddleware(tx, logger))

				apis.Users.RegisterEndpoints(r)
				apis.Projects.RegisterEndpoints(r)
				apis.Applications.RegisterEndpoints(r)
			})

			// no request transaction: provisioning runs the external tool
			apis.Kits.RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
