// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

// MonitorInterface records request latency and the availability of
// the database and the provisioning tool.
type MonitorInterface interface {
	GetService() string
	SetResponseTimeMetric(tags map[string]string, value float64) error
	SetDependencyAvailability(tags map[string]string, value float64) error
}
