package storage

import "errors"

// Common storage errors
var (
	// ErrTileNotFound indicates that tile with given id does not exist
	ErrTileNotFound = errors.New("tile not found")

	// ErrImageNotFound indicates that requested image file does not exist
	ErrImageNotFound = errors.New("image not found")

	// ErrInvalidFilename indicates that requested filename is unsafe to serve
	// (contains path separators or traversal sequences)
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrStorageUnavailable indicates that the backing medium cannot be
	// read or written. The previous on-disk state remains intact.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
