package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/homelabster/internal/models"
	"github.com/iudanet/homelabster/internal/server/storage"
	"github.com/iudanet/homelabster/internal/validation"
	"github.com/iudanet/homelabster/pkg/api"
)

// SettingsHandler обрабатывает запросы к настройкам дашборда
type SettingsHandler struct {
	logger *slog.Logger
	store  storage.DocumentStore
}

// NewSettingsHandler создает новый handler для настроек
func NewSettingsHandler(logger *slog.Logger, store storage.DocumentStore) *SettingsHandler {
	return &SettingsHandler{
		logger: logger,
		store:  store,
	}
}

// Get обрабатывает GET /api/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.store.GetSettings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get settings", slog.Any("error", err))
		sendError(h.logger, w, "failed to fetch settings", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, settings, http.StatusOK)
}

// Update обрабатывает PUT /api/settings
// Частичное обновление настроек, требует аутентификации
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SettingsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode settings request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateSettingsUpdate(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid settings", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	var patch storage.SettingsPatch
	if req.Theme != nil {
		theme := models.Theme(*req.Theme)
		patch.Theme = &theme
	}
	patch.SiteName = req.SiteName

	settings, err := h.store.UpdateSettings(ctx, patch)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update settings", slog.Any("error", err))
		sendError(h.logger, w, "failed to update settings", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "settings updated")

	sendJSON(h.logger, w, settings, http.StatusOK)
}
