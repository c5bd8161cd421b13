package storage

import (
	"context"

	"github.com/iudanet/homelabster/internal/models"
)

// TileFields contains the caller-supplied fields of a new tile.
// ID and timestamps are generated by the store.
type TileFields struct {
	Name        string
	URL         string
	Description string
	Icon        string
	Order       int
}

// TilePatch is a partial tile update. Nil fields are left unchanged.
// ID and CreatedAt cannot be modified through a patch.
type TilePatch struct {
	Name        *string
	URL         *string
	Description *string
	Icon        *string
	Order       *int
}

// SettingsPatch is a partial settings update. Nil fields are left unchanged.
type SettingsPatch struct {
	Theme    *models.Theme
	SiteName *string
}

// DocumentStore defines interface for the single persisted AppData document.
// Every mutation is a full read-modify-write of the whole document followed
// by an atomic replace of the backing file.
type DocumentStore interface {
	// Load returns the current document. If none exists yet, a default
	// document is synthesized, persisted and returned.
	// Returns ErrStorageUnavailable on any other I/O failure.
	Load(ctx context.Context) (*models.AppData, error)

	// Save persists the full document atomically. On failure the previous
	// document remains intact and readable.
	Save(ctx context.Context, data *models.AppData) error

	// ListTiles returns all tiles sorted by Order ascending,
	// stable on equal keys (insertion order preserved)
	ListTiles(ctx context.Context) ([]models.Tile, error)

	// GetTile retrieves a tile by id
	// Returns ErrTileNotFound if tile doesn't exist
	GetTile(ctx context.Context, id string) (*models.Tile, error)

	// CreateTile appends a new tile with a fresh unique id and
	// createdAt/updatedAt stamped to now, persists, returns the tile
	CreateTile(ctx context.Context, fields TileFields) (*models.Tile, error)

	// UpdateTile merges patch over the existing tile, stamps updatedAt,
	// persists and returns the updated tile
	// Returns ErrTileNotFound if tile doesn't exist
	UpdateTile(ctx context.Context, id string, patch TilePatch) (*models.Tile, error)

	// DeleteTile removes the tile with matching id and persists
	// Returns ErrTileNotFound if tile doesn't exist
	DeleteTile(ctx context.Context, id string) error

	// GetSettings returns the settings of the document
	GetSettings(ctx context.Context) (*models.Settings, error)

	// UpdateSettings merges patch over existing settings, stamps updatedAt,
	// persists and returns the updated settings
	UpdateSettings(ctx context.Context, patch SettingsPatch) (*models.Settings, error)
}
