// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// ApprovalState is shared by users and participants.
type ApprovalState int

const (
	ApprovalPending  ApprovalState = 0
	ApprovalApproved ApprovalState = 1
	ApprovalRejected ApprovalState = 2
)

func (s ApprovalState) String() string {
	switch s {
	case ApprovalApproved:
		return "approved"
	case ApprovalRejected:
		return "rejected"
	default:
		return "pending"
	}
}

// User roles.
const (
	RoleAdmin     = "admin"
	RoleUser      = "user"
	RoleOrgAdmin  = "org_admin"
	RoleProjAdmin = "proj_admin"
)

// Admin participant roles.
const (
	AdminRoleProjectAdmin = "project_admin"
	AdminRoleOrgAdmin     = "org_admin"
	AdminRoleLead         = "lead"
	AdminRoleMember       = "member"
)

// Connection security modes for servers. "none" is stored as ConnectionClear.
const (
	ConnectionMTLS  = "mtls"
	ConnectionTLS   = "tls"
	ConnectionClear = "clear"
)

// Application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// ParticipantKind names the three kinds of startup kit.
type ParticipantKind string

const (
	KindServer ParticipantKind = "server"
	KindClient ParticipantKind = "client"
	KindAdmin  ParticipantKind = "admin"
)

func (k ParticipantKind) Valid() bool {
	switch k {
	case KindServer, KindClient, KindAdmin:
		return true
	}
	return false
}

type User struct {
	ID            string        `db:"id" json:"id"`
	Email         string        `db:"email" json:"email"`
	Name          string        `db:"name" json:"name"`
	PasswordHash  string        `db:"password_hash" json:"-"`
	Role          string        `db:"role" json:"role"`
	Organization  string        `db:"organization" json:"organization"`
	ApprovalState ApprovalState `db:"approval_state" json:"approval_state"`
	DownloadCount int           `db:"download_count" json:"download_count"`
	Active        bool          `db:"active" json:"active"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type Project struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	APIVersion  int       `db:"api_version" json:"api_version"`
	Scheme      string    `db:"scheme" json:"scheme"`
	ServerName  string    `db:"server_name" json:"server_name"`
	HAMode      bool      `db:"ha_mode" json:"ha_mode"`
	Frozen      bool      `db:"frozen" json:"frozen"`
	Public      bool      `db:"public" json:"public"`
	CreatedBy   string    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	CreatorName  string `db:"creator_name" json:"creator_name,omitempty"`
	CreatorEmail string `db:"creator_email" json:"creator_email,omitempty"`
}

type Server struct {
	ID                 string        `db:"id" json:"id"`
	ProjectID          string        `db:"project_id" json:"project_id"`
	Name               string        `db:"name" json:"name"`
	Org                string        `db:"org" json:"org"`
	FedLearnPort       int           `db:"fed_learn_port" json:"fed_learn_port"`
	AdminPort          int           `db:"admin_port" json:"admin_port"`
	ConnectionSecurity string        `db:"connection_security" json:"connection_security"`
	ApprovalState      ApprovalState `db:"approval_state" json:"approval_state"`
	DownloadCount      int           `db:"download_count" json:"download_count"`
	CreatedAt          time.Time     `db:"created_at" json:"created_at"`
}

type Client struct {
	ID            string        `db:"id" json:"id"`
	ProjectID     string        `db:"project_id" json:"project_id"`
	Name          string        `db:"name" json:"name"`
	Org           string        `db:"org" json:"org"`
	Description   string        `db:"description" json:"description"`
	NumGPUs       int           `db:"num_gpus" json:"num_gpus"`
	GPUMemoryGiB  int           `db:"gpu_memory_gib" json:"gpu_memory"`
	ApprovalState ApprovalState `db:"approval_state" json:"approval_state"`
	DownloadCount int           `db:"download_count" json:"download_count"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

type Admin struct {
	ID            string        `db:"id" json:"id"`
	ProjectID     string        `db:"project_id" json:"project_id"`
	Email         string        `db:"email" json:"email"`
	Org           string        `db:"org" json:"org"`
	Role          string        `db:"role" json:"role"`
	ApprovalState ApprovalState `db:"approval_state" json:"approval_state"`
	DownloadCount int           `db:"download_count" json:"download_count"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
}

type UserApplication struct {
	ID         string     `db:"id" json:"id"`
	UserID     string     `db:"user_id" json:"user_id"`
	ProjectID  string     `db:"project_id" json:"project_id"`
	Role       string     `db:"role" json:"role_requested"`
	Message    string     `db:"message" json:"message"`
	Status     string     `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	ReviewedAt *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewedBy string     `db:"reviewed_by" json:"reviewed_by,omitempty"`

	ApplicantName         string `db:"applicant_name" json:"user_name,omitempty"`
	ApplicantEmail        string `db:"applicant_email" json:"user_email,omitempty"`
	ApplicantOrganization string `db:"applicant_organization" json:"organization,omitempty"`
}

// ProjectSummary adds the provisioning flag to a project.
type ProjectSummary struct {
	*Project

	Provisioned bool `json:"provisioned"`
}

// ProjectDetail is a project together with its participants.
type ProjectDetail struct {
	Project ProjectSummary `json:"project"`
	Servers []*Server      `json:"servers"`
	Clients []*Client      `json:"clients"`
	Admins  []*Admin       `json:"admins"`
}
