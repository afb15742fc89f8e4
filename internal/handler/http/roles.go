package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fayrashop/api/models"
)

func (h *Handler) createRole(_ http.ResponseWriter, r *http.Request) (any, error) {
	var role models.Role
	if err := decodeJSON(r, &role); err != nil {
		return nil, err
	}

	result, err := h.services.Roles.Create(r.Context(), role)
	if err != nil {
		return nil, err
	}

	return created{data: result, message: "Role created successfully"}, nil
}

func (h *Handler) listRoles(_ http.ResponseWriter, r *http.Request) (any, error) {
	return h.services.Roles.List(r.Context())
}

func (h *Handler) getRole(_ http.ResponseWriter, r *http.Request) (any, error) {
	return h.services.Roles.Get(r.Context(), chi.URLParam(r, "id"))
}

func (h *Handler) updateRole(_ http.ResponseWriter, r *http.Request) (any, error) {
	var upd models.RoleUpdate
	if err := decodeJSON(r, &upd); err != nil {
		return nil, err
	}

	role, err := h.services.Roles.Update(r.Context(), chi.URLParam(r, "id"), upd)
	if err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(role, "Role updated successfully", nil), nil
}

func (h *Handler) deleteRole(_ http.ResponseWriter, r *http.Request) (any, error) {
	if err := h.services.Roles.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(nil, "Role deleted successfully", nil), nil
}
