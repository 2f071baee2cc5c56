// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/canonical/provisioning-dashboard/internal/logging"
)

type API struct {
	handler http.Handler

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Handle("/metrics", a.handler)
}

// NewAPI exposes the default prometheus registry.
func NewAPI(logger logging.LoggerInterface) *API {
	return NewAPIWithGatherer(prometheus.DefaultGatherer, logger)
}

func NewAPIWithGatherer(g prometheus.Gatherer, logger logging.LoggerInterface) *API {
	return &API{
		handler: promhttp.HandlerFor(g, promhttp.HandlerOpts{}),
		logger:  logger,
	}
}
