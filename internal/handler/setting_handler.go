package handler

import (
	"encoding/json"
	"net/http"

	"stitchkart/internal/model"
	"stitchkart/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// SettingHandler handles admin config HTTP requests.
type SettingHandler struct {
	service service.SettingService
	logger  zerolog.Logger
}

// NewSettingHandler creates a new setting handler.
func NewSettingHandler(service service.SettingService, logger zerolog.Logger) *SettingHandler {
	return &SettingHandler{
		service: service,
		logger:  logger.With().Str("handler", "setting").Logger(),
	}
}

// Get handles GET /api/admin/configs/{key} requests.
func (h *SettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	setting, err := h.service.Get(r.Context(), key)
	if err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, setting)
}

// Create handles POST /api/admin/configs requests.
func (h *SettingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.SettingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.Add(r.Context(), req.Key, req.Value); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, model.Setting{Key: req.Key, Value: req.Value})
}

// Update handles PUT /api/admin/configs/{key} requests.
func (h *SettingHandler) Update(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req model.SettingValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.Set(r.Context(), key, req.Value); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Setting{Key: key, Value: req.Value})
}

// Delete handles DELETE /api/admin/configs/{key} requests.
func (h *SettingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if err := h.service.Delete(r.Context(), key); err != nil {
		respondError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "config deleted"})
}
