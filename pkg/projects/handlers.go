// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package projects

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/provisioning-dashboard/internal/http/types"
	"github.com/canonical/provisioning-dashboard/internal/logging"
	"github.com/canonical/provisioning-dashboard/internal/monitoring"
	"github.com/canonical/provisioning-dashboard/internal/tracing"
	"github.com/canonical/provisioning-dashboard/internal/types"
	"github.com/canonical/provisioning-dashboard/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/projects", a.listProjects)
	r.Post("/projects", a.createProject)
	r.Get("/projects/{id}", a.getProject)
	r.Put("/projects/{id}", a.updateProject)
	r.Delete("/projects/{id}", a.deleteProject)

	r.Post("/projects/{id}/servers", a.addServer)
	r.Put("/projects/{id}/servers/{itemID}", a.updateServer)
	r.Delete("/projects/{id}/servers/{itemID}", a.deleteServer)

	r.Post("/projects/{id}/clients", a.addClient)
	r.Put("/projects/{id}/clients/{itemID}", a.updateClient)
	r.Delete("/projects/{id}/clients/{itemID}", a.deleteClient)

	r.Post("/projects/{id}/admins", a.addAdmin)
	r.Put("/projects/{id}/admins/{itemID}", a.updateAdmin)
	r.Delete("/projects/{id}/admins/{itemID}", a.deleteAdmin)
}

// caller returns the authenticated user or writes a 401.
func (a *API) caller(w http.ResponseWriter, r *http.Request) (*types.User, bool) {
	user, ok := authentication.GetUser(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrUnauthorized, a.logger)
	}
	return user, ok
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httptypes.DecodeJSON(r, v); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return false
	}
	return true
}

func (a *API) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := a.service.ListProjects(r.Context())
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, listResponse{Projects: nonNil(projects)}, a.logger)
}

func (a *API) createProject(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	in := new(ProjectInput)
	if !a.decode(w, r, in) {
		return
	}

	project, err := a.service.CreateProject(r.Context(), user, in)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, createdResponse{
		Message:   "Project created successfully",
		ProjectID: project.ID,
	}, a.logger)
}

func (a *API) getProject(w http.ResponseWriter, r *http.Request) {
	detail, err := a.service.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, detail, a.logger)
}

func (a *API) updateProject(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	in := new(ProjectInput)
	if !a.decode(w, r, in) {
		return
	}

	if _, err := a.service.UpdateProject(r.Context(), user, chi.URLParam(r, "id"), in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, messageResponse{Message: "Project updated successfully"}, a.logger)
}

func (a *API) deleteProject(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteProject(r.Context(), user, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, messageResponse{Message: "Project deleted successfully"}, a.logger)
}

func (a *API) addServer(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	in := new(ServerInput)
	if !a.decode(w, r, in) {
		return
	}

	server, err := a.service.AddServer(r.Context(), user, chi.URLParam(r, "id"), in)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, createdResponse{Message: "Server added successfully", ServerID: server.ID}, a.logger)
}

func (a *API) updateServer(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	in := new(ServerInput)
	if !a.decode(w, r, in) {
		return
	}

	if _, err := a.service.UpdateServer(r.Context(), user, chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, messageResponse{Message: "Server updated successfully"}, a.logger)
}

func (a *API) deleteServer(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteServer(r.Context(), user, chi.URLParam(r, "id"), chi.URLParam(r, "itemID")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, messageResponse{Message: "Server deleted successfully"}, a.logger)
}

func (a *API) addClient(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	in := new(ClientInput)
	if !a.decode(w, r, in) {
		return
	}

	client, err := a.service.AddClient(r.Context(), user, chi.URLParam(r, "id"), in)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, createdResponse{Message: "Client added successfully", ClientID: client.ID}, a.logger)
}

func (a *API) updateClient(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	in := new(ClientInput)
	if !a.decode(w, r, in) {
		return
	}

	if _, err := a.service.UpdateClient(r.Context(), user, chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, messageResponse{Message: "Client updated successfully"}, a.logger)
}

func (a *API) deleteClient(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteClient(r.Context(), user, chi.URLParam(r, "id"), chi.URLParam(r, "itemID")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, messageResponse{Message: "Client deleted successfully"}, a.logger)
}

func (a *API) addAdmin(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	in := new(AdminInput)
	if !a.decode(w, r, in) {
		return
	}

	admin, err := a.service.AddAdmin(r.Context(), user, chi.URLParam(r, "id"), in)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, createdResponse{Message: "Admin added successfully", AdminID: admin.ID}, a.logger)
}

func (a *API) updateAdmin(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	in := new(AdminInput)
	if !a.decode(w, r, in) {
		return
	}

	if _, err := a.service.UpdateAdmin(r.Context(), user, chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), in); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, messageResponse{Message: "Admin updated successfully"}, a.logger)
}

func (a *API) deleteAdmin(w http.ResponseWriter, r *http.Request) {
	user, ok := a.caller(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteAdmin(r.Context(), user, chi.URLParam(r, "id"), chi.URLParam(r, "itemID")); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, messageResponse{Message: "Admin deleted successfully"}, a.logger)
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
