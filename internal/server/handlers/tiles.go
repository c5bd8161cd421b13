package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/homelabster/internal/server/storage"
	"github.com/iudanet/homelabster/internal/validation"
	"github.com/iudanet/homelabster/pkg/api"
)

// TilesHandler обрабатывает CRUD запросы по плиткам
type TilesHandler struct {
	logger *slog.Logger
	store  storage.DocumentStore
}

// NewTilesHandler создает новый handler для плиток
func NewTilesHandler(logger *slog.Logger, store storage.DocumentStore) *TilesHandler {
	return &TilesHandler{
		logger: logger,
		store:  store,
	}
}

// List обрабатывает GET /api/tiles
// Возвращает все плитки, отсортированные по order
func (h *TilesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tiles, err := h.store.ListTiles(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tiles", slog.Any("error", err))
		sendError(h.logger, w, "failed to fetch tiles", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, tiles, http.StatusOK)
}

// Create обрабатывает POST /api/tiles
// Создание новой плитки, требует аутентификации
func (h *TilesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.TileCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode create tile request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateTileCreate(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid tile", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	tile, err := h.store.CreateTile(ctx, storage.TileFields{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create tile", slog.Any("error", err))
		sendError(h.logger, w, "failed to create tile", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "tile created",
		slog.String("tile_id", tile.ID),
		slog.String("name", tile.Name))

	sendJSON(h.logger, w, tile, http.StatusCreated)
}

// Get обрабатывает GET /api/tiles/{id}
func (h *TilesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	tile, err := h.store.GetTile(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrTileNotFound) {
			sendError(h.logger, w, "tile not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get tile", slog.Any("error", err))
		sendError(h.logger, w, "failed to fetch tile", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, tile, http.StatusOK)
}

// Update обрабатывает PUT /api/tiles/{id}
// Частичное обновление плитки, требует аутентификации
func (h *TilesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req api.TileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode update tile request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateTileUpdate(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid tile update", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	tile, err := h.store.UpdateTile(ctx, id, storage.TilePatch{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Icon:        req.Icon,
		Order:       req.Order,
	})
	if err != nil {
		if errors.Is(err, storage.ErrTileNotFound) {
			sendError(h.logger, w, "tile not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update tile", slog.Any("error", err))
		sendError(h.logger, w, "failed to update tile", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "tile updated", slog.String("tile_id", tile.ID))

	sendJSON(h.logger, w, tile, http.StatusOK)
}

// Delete обрабатывает DELETE /api/tiles/{id}
// Удаление плитки, требует аутентификации
func (h *TilesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.store.DeleteTile(ctx, id); err != nil {
		if errors.Is(err, storage.ErrTileNotFound) {
			sendError(h.logger, w, "tile not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete tile", slog.Any("error", err))
		sendError(h.logger, w, "failed to delete tile", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "tile deleted", slog.String("tile_id", id))

	sendJSON(h.logger, w, api.DeleteResponse{Success: true}, http.StatusOK)
}
