// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "github.com/canonical/provisioning-dashboard/internal/types"

const (
	MANAGE_PERMISSION   = "manage"
	REVIEW_PERMISSION   = "review"
	DOWNLOAD_PERMISSION = "download"
)

func ProjectResource(projectID, permission string) string {
	return "project:" + projectID + "#" + permission
}

func KitResource(projectID string, kind types.ParticipantKind) string {
	return ProjectResource(projectID, DOWNLOAD_PERMISSION) + ":" + string(kind)
}

func subject(user *types.User) string {
	if user == nil {
		return "anonymous"
	}
	return user.Email
}
