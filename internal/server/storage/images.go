package storage

import (
	"context"
	"io"
)

// ImageStore defines interface for uploaded icon files persistence
type ImageStore interface {
	// SaveImage stores the content under a fresh collision-free filename
	// derived from originalName's extension. Returns the public path
	// for serving the image (e.g. /api/images/<filename>).
	SaveImage(ctx context.Context, originalName string, content io.Reader) (string, error)

	// ReadImage returns the content of a previously uploaded file.
	// Returns ErrInvalidFilename for unsafe names and
	// ErrImageNotFound if the file does not exist.
	ReadImage(ctx context.Context, filename string) ([]byte, error)

	// DeleteImage removes an uploaded file. Deleting a missing file
	// is not an error.
	DeleteImage(ctx context.Context, filename string) error
}
