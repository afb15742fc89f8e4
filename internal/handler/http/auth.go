package http

import (
	"net/http"

	"github.com/fayrashop/api/internal/service"
	"github.com/fayrashop/api/models"
)

// authResponse is the wire shape of register and login responses.
type authResponse struct {
	User         models.PublicUser `json:"user"`
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
}

func newAuthResponse(result service.AuthResult) authResponse {
	return authResponse{
		User:         result.User,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}
}

func (h *Handler) register(_ http.ResponseWriter, r *http.Request) (any, error) {
	var in service.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		return nil, err
	}

	result, err := h.services.Auth.Register(r.Context(), in)
	if err != nil {
		return nil, err
	}

	return created{data: newAuthResponse(result), message: "User registered successfully"}, nil
}

func (h *Handler) login(_ http.ResponseWriter, r *http.Request) (any, error) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		return nil, err
	}

	result, err := h.services.Auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(newAuthResponse(result), "Login successful", nil), nil
}

func (h *Handler) refresh(_ http.ResponseWriter, r *http.Request) (any, error) {
	var in struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := decodeJSON(r, &in); err != nil {
		return nil, err
	}

	tokens, err := h.services.Auth.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(tokens, "Token refreshed successfully", nil), nil
}
