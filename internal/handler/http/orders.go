package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/internal/service"
	"github.com/fayrashop/api/models"
)

func (h *Handler) createOrder(_ http.ResponseWriter, r *http.Request) (any, error) {
	principal, ok := principalFromRequest(r)
	if !ok {
		return nil, apperrors.Unauthorized
	}

	var in service.CreateOrderInput
	if err := decodeJSON(r, &in); err != nil {
		return nil, err
	}

	order, err := h.services.Orders.Create(r.Context(), principal, in)
	if err != nil {
		return nil, err
	}

	return created{data: order, message: "Order created successfully"}, nil
}

func (h *Handler) listOrders(_ http.ResponseWriter, r *http.Request) (any, error) {
	principal, ok := principalFromRequest(r)
	if !ok {
		return nil, apperrors.Unauthorized
	}

	status := models.OrderStatus(r.URL.Query().Get("status"))

	orders, meta, err := h.services.Orders.List(r.Context(), principal, status, pageQueryFromRequest(r))
	if err != nil {
		return nil, err
	}

	return models.Paginated{Data: orders, Meta: meta}, nil
}

func (h *Handler) getOrder(_ http.ResponseWriter, r *http.Request) (any, error) {
	principal, ok := principalFromRequest(r)
	if !ok {
		return nil, apperrors.Unauthorized
	}

	return h.services.Orders.Get(r.Context(), principal, chi.URLParam(r, "id"))
}

func (h *Handler) updateOrderStatus(_ http.ResponseWriter, r *http.Request) (any, error) {
	var in struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := decodeJSON(r, &in); err != nil {
		return nil, err
	}

	order, err := h.services.Orders.UpdateStatus(r.Context(), chi.URLParam(r, "id"), in.Status)
	if err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(order, "Order status updated successfully", nil), nil
}

func (h *Handler) cancelOrder(_ http.ResponseWriter, r *http.Request) (any, error) {
	principal, ok := principalFromRequest(r)
	if !ok {
		return nil, apperrors.Unauthorized
	}

	order, err := h.services.Orders.Cancel(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}

	return models.NewSuccessEnvelope(order, "Order cancelled successfully", nil), nil
}
