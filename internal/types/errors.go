// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// ProvisioningError reports a failed run of the external provisioning tool.
type ProvisioningError struct {
	ProjectID string
	ExitCode  int
	Stderr    string
	Err       error
}

func (e *ProvisioningError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("provisioning project %s failed with exit code %d: %s", e.ProjectID, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("provisioning project %s failed with exit code %d: %v", e.ProjectID, e.ExitCode, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

// Validationf wraps ErrValidation with a message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
