// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package applications

import (
	"github.com/canonical/provisioning-dashboard/internal/types"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type ApplyRequest struct {
	Role    string `json:"role_requested" validate:"omitempty,oneof=user org_admin proj_admin"`
	Message string `json:"message" validate:"max=2000"`
}

type reviewRequest struct {
	Action string `json:"action"`
}

type messageResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id,omitempty"`
}

type listResponse struct {
	Applications []*types.UserApplication `json:"applications"`
}
