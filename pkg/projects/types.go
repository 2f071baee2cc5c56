// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"github.com/canonical/provisioning-dashboard/internal/types"
)

const (
	defaultAPIVersion   = 3
	defaultScheme       = "grpc"
	defaultServerName   = "FLServer.com"
	defaultFedLearnPort = 8002
	defaultAdminPort    = 8003
	defaultNumGPUs      = 1
	defaultGPUMemory    = 16
)

// Input structs carry pointers so that absent fields keep their current
// or default value.

type ProjectInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Scheme      *string `json:"scheme" validate:"omitnil,oneof=grpc http tcp"`
	ServerName  *string `json:"server_name" validate:"omitnil,hostname_rfc1123"`
	HAMode      *bool   `json:"ha_mode"`
	Frozen      *bool   `json:"frozen"`
	Public      *bool   `json:"public"`
}

type ServerInput struct {
	Name               *string              `json:"name"`
	Org                *string              `json:"org"`
	FedLearnPort       *int                 `json:"fed_learn_port" validate:"omitnil,min=1,max=65535"`
	AdminPort          *int                 `json:"admin_port" validate:"omitnil,min=1,max=65535"`
	ConnectionSecurity *string              `json:"connection_security" validate:"omitnil,oneof=mtls tls clear none"`
	ApprovalState      *types.ApprovalState `json:"approval_state" validate:"omitnil,min=0,max=2"`
}

type ClientInput struct {
	Name          *string              `json:"name"`
	Org           *string              `json:"org"`
	Description   *string              `json:"description"`
	NumGPUs       *int                 `json:"num_gpus" validate:"omitnil,min=0"`
	GPUMemory     *int                 `json:"gpu_memory" validate:"omitnil,min=0"`
	ApprovalState *types.ApprovalState `json:"approval_state" validate:"omitnil,min=0,max=2"`
}

type AdminInput struct {
	Email         *string              `json:"email" validate:"omitnil,email"`
	Org           *string              `json:"org"`
	Role          *string              `json:"role" validate:"omitnil,oneof=project_admin org_admin lead member"`
	ApprovalState *types.ApprovalState `json:"approval_state" validate:"omitnil,min=0,max=2"`
}

type listResponse struct {
	Projects []*types.Project `json:"projects"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	Message   string `json:"message"`
	ProjectID string `json:"project_id,omitempty"`
	ServerID  string `json:"server_id,omitempty"`
	ClientID  string `json:"client_id,omitempty"`
	AdminID   string `json:"admin_id,omitempty"`
}
