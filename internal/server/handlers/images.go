package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/homelabster/internal/server/storage"
	"github.com/iudanet/homelabster/internal/server/storage/imagefs"
	"github.com/iudanet/homelabster/pkg/api"
)

// MaxUploadSize максимальный размер загружаемой иконки
const MaxUploadSize = 5 << 20 // 5 MiB

// allowedImageTypes MIME типы, разрешенные к загрузке
var allowedImageTypes = map[string]bool{
	"image/png":     true,
	"image/jpeg":    true,
	"image/svg+xml": true,
}

// ImagesHandler обрабатывает загрузку и отдачу иконок
type ImagesHandler struct {
	logger *slog.Logger
	images storage.ImageStore
}

// NewImagesHandler создает новый handler для иконок
func NewImagesHandler(logger *slog.Logger, images storage.ImageStore) *ImagesHandler {
	return &ImagesHandler{
		logger: logger,
		images: images,
	}
}

// Upload обрабатывает POST /api/upload
// Принимает multipart form с полем file, требует аутентификации
func (h *ImagesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Жесткий лимит на размер тела запроса
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		h.logger.WarnContext(ctx, "failed to parse multipart form", slog.Any("error", err))
		sendError(h.logger, w, "file size must be less than 5MB", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		sendError(h.logger, w, "no file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		h.logger.WarnContext(ctx, "disallowed upload type", slog.String("content_type", contentType))
		sendError(h.logger, w, "invalid file type, only PNG, JPG and SVG are allowed", http.StatusBadRequest)
		return
	}

	if header.Size > MaxUploadSize {
		sendError(h.logger, w, "file size must be less than 5MB", http.StatusBadRequest)
		return
	}

	url, err := h.images.SaveImage(ctx, header.Filename, file)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save image", slog.Any("error", err))
		sendError(h.logger, w, "failed to upload image", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "image uploaded",
		slog.String("url", url),
		slog.Int64("size", header.Size))

	sendJSON(h.logger, w, api.UploadResponse{URL: url}, http.StatusOK)
}

// Serve обрабатывает GET /api/images/{filename}
// Отдает ранее загруженный файл с долгим кешированием
func (h *ImagesHandler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filename := chi.URLParam(r, "filename")

	content, err := h.images.ReadImage(ctx, filename)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidFilename):
			sendError(h.logger, w, "invalid filename", http.StatusBadRequest)
		case errors.Is(err, storage.ErrImageNotFound):
			sendError(h.logger, w, "image not found", http.StatusNotFound)
		default:
			h.logger.ErrorContext(ctx, "failed to read image", slog.Any("error", err))
			sendError(h.logger, w, "failed to serve image", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", imagefs.ContentType(filename))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if _, err := w.Write(content); err != nil {
		h.logger.ErrorContext(ctx, "failed to write image response", slog.Any("error", err))
	}
}
