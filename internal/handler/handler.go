package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"stitchkart/internal/auth"
	"stitchkart/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already written; nothing left to do for the client.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// respondError maps a service error onto an HTTP status. Domain errors keep
// their code and message; anything else is an opaque 500.
func respondError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusFor(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("request failed")
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeNoActiveCart:
		return http.StatusNotFound
	case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound,
		model.ErrCodeCartItemMissing, model.ErrCodeSettingNotFound:
		return http.StatusNotFound
	case model.ErrCodeEmptyCart, model.ErrCodeValidation,
		model.ErrCodeInvalidQuantity, model.ErrCodeInvalidStatus,
		model.ErrCodeInvalidJSON:
		return http.StatusBadRequest
	case model.ErrCodeConfigMissing, model.ErrCodePaymentProvider:
		return http.StatusInternalServerError
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// identity pulls the authenticated principal set by the auth middleware. A
// missing identity on a protected route is a server misconfiguration.
func identity(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (*auth.Identity, bool) {
	id, ok := auth.IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "authentication required", logger)
		return nil, false
	}
	return id, true
}
