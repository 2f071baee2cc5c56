// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kits

import "time"

type provisionResponse struct {
	Message       string    `json:"message"`
	Workspace     string    `json:"workspace"`
	Cached        bool      `json:"cached"`
	Warnings      []string  `json:"warnings,omitempty"`
	ProvisionedAt time.Time `json:"provisioned_at"`
}
