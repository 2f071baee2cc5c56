// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/storage"
	domainTypes "github.com/canonical/provisioning-dashboard/internal/types"
)

const genericErrorMessage = "internal server error"

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// StatusFromError maps domain and storage errors onto HTTP status codes.
func StatusFromError(err error) int {
	var provErr *domainTypes.ProvisioningError

	switch {
	case errors.As(err, &provErr):
		return http.StatusInternalServerError
	case errors.Is(err, domainTypes.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domainTypes.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainTypes.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainTypes.ErrNotFound),
		errors.Is(err, storage.ErrNotFound),
		errors.Is(err, storage.ErrForeignKeyViolation):
		return http.StatusNotFound
	case errors.Is(err, domainTypes.ErrConflict), errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the body for err. Unmapped errors get a generic
// message, provisioning failures surface the tool's stderr.
func NewErrorResponse(err error) *ErrorResponse {
	status := StatusFromError(err)

	var provErr *domainTypes.ProvisioningError
	if errors.As(err, &provErr) {
		return &ErrorResponse{Status: status, Message: provErr.Error()}
	}

	if status == http.StatusInternalServerError {
		return &ErrorResponse{Status: status, Message: genericErrorMessage}
	}

	return &ErrorResponse{Status: status, Message: err.Error()}
}

// WriteJSON encodes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any, logger logging.LoggerInterface) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

// WriteError logs server side failures and writes the error body.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	resp := NewErrorResponse(err)
	if resp.Status >= http.StatusInternalServerError {
		logger.Errorf("request failed: %v", err)
	} else {
		logger.Debugf("request rejected: %v", err)
	}

	WriteJSON(w, resp.Status, resp, logger)
}

// DecodeJSON reads a JSON body into v. An empty body leaves v untouched.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	return fmt.Errorf("%w: invalid request body: %v", domainTypes.ErrValidation, err)
}
