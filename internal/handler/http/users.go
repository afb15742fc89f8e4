package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/models"
)

func (h *Handler) listUsers(_ http.ResponseWriter, r *http.Request) (any, error) {
	users, meta, err := h.services.Users.List(r.Context(), pageQueryFromRequest(r))
	if err != nil {
		return nil, err
	}

	return models.Paginated{Data: users, Meta: meta}, nil
}

func (h *Handler) getUser(_ http.ResponseWriter, r *http.Request) (any, error) {
	principal, ok := principalFromRequest(r)
	if !ok {
		return nil, apperrors.Unauthorized
	}

	return h.services.Users.Get(r.Context(), principal, chi.URLParam(r, "id"))
}

func (h *Handler) updateUser(_ http.ResponseWriter, r *http.Request) (any, error) {
	principal, ok := principalFromRequest(r)
	if !ok {
		return nil, apperrors.Unauthorized
	}

	var upd models.UserUpdate
	if err := decodeJSON(r, &upd); err != nil {
		return nil, err
	}

	user, err := h.services.Users.Update(r.Context(), principal, chi.URLParam(r, "id"), upd)
	if err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(user, "User updated successfully", nil), nil
}

func (h *Handler) changePassword(_ http.ResponseWriter, r *http.Request) (any, error) {
	principal, ok := principalFromRequest(r)
	if !ok {
		return nil, apperrors.Unauthorized
	}

	var in struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := decodeJSON(r, &in); err != nil {
		return nil, err
	}

	if err := h.services.Users.ChangePassword(r.Context(), principal, chi.URLParam(r, "id"),
		in.CurrentPassword, in.NewPassword); err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(nil, "Password changed successfully", nil), nil
}

func (h *Handler) setUserStatus(_ http.ResponseWriter, r *http.Request) (any, error) {
	var in struct {
		Status bool `json:"status"`
	}
	if err := decodeJSON(r, &in); err != nil {
		return nil, err
	}

	user, err := h.services.Users.SetStatus(r.Context(), chi.URLParam(r, "id"), in.Status)
	if err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(user, "User status updated successfully", nil), nil
}

func (h *Handler) deleteUser(_ http.ResponseWriter, r *http.Request) (any, error) {
	if err := h.services.Users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(nil, "User deleted successfully", nil), nil
}
