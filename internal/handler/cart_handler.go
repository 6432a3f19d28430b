package handler

import (
	"encoding/json"
	"net/http"

	"stitchkart/internal/model"
	"stitchkart/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/customer/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	view, err := h.service.GetCart(r.Context(), id.ID)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// AddItem handles POST /api/customer/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	var req model.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	item, err := h.service.AddItem(r.Context(), id.ID, &req)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/customer/cart/items/{itemID} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid cart item ID", h.logger)
		return
	}

	var req model.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateItem(r.Context(), id.ID, itemID, req.Quantity); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "cart item updated"})
}

// RemoveItem handles DELETE /api/customer/cart/items/{itemID} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "invalid cart item ID", h.logger)
		return
	}

	if err := h.service.RemoveItem(r.Context(), id.ID, itemID); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "cart item removed"})
}
