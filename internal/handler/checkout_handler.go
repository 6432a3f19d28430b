package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"stitchkart/internal/model"
	"stitchkart/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout HTTP requests.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Checkout handles POST /api/customer/checkout requests.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := identity(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	resp, err := h.service.Checkout(r.Context(), id.ID, &req)
	if err != nil {
		var domainErr *model.DomainError
		switch {
		case errors.Is(err, model.ErrPaymentProvider):
			writeError(w, http.StatusInternalServerError, model.ErrCodePaymentProvider,
				"Checkout failed: "+err.Error(), h.logger)
		case errors.As(err, &domainErr):
			writeError(w, statusFor(domainErr.Code), domainErr.Code, domainErr.Message, h.logger)
		default:
			writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError,
				"Checkout failed: "+err.Error(), h.logger)
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
