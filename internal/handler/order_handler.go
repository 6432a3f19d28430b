package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stitchkart/internal/model"
	"stitchkart/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests for both realms.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// ListMine handles GET /api/customer/orders requests.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	orders, err := h.service.ListForCustomer(r.Context(), id.ID)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetMine handles GET /api/customer/orders/{orderID} requests.
func (h *OrderHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid order ID format", h.logger)
		return
	}

	resp, err := h.service.GetForCustomer(r.Context(), id.ID, orderID)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListAll handles GET /api/admin/orders requests.
func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := h.service.ListAll(r.Context(), limit, offset)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PUT /api/admin/orders/{orderID}/status requests.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(chi.URLParam(r, "orderID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid order ID format", h.logger)
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), orderID, &req); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "order status updated"})
}
