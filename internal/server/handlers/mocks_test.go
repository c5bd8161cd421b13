package handlers

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/iudanet/homelabster/internal/models"
	"github.com/iudanet/homelabster/internal/server/storage"
)

// mockDocumentStore is an in-memory mock implementation of DocumentStore
type mockDocumentStore struct {
	tiles    []models.Tile
	settings models.Settings
	nextID   int
	err      error // forced error for all operations
}

func newMockDocumentStore() *mockDocumentStore {
	now := time.Now()
	return &mockDocumentStore{
		settings: models.Settings{
			Theme:     models.ThemeSystem,
			SiteName:  models.DefaultSiteName,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (m *mockDocumentStore) Load(ctx context.Context) (*models.AppData, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.AppData{Version: models.DefaultVersion, Tiles: m.tiles, Settings: m.settings}, nil
}

func (m *mockDocumentStore) Save(ctx context.Context, data *models.AppData) error {
	if m.err != nil {
		return m.err
	}
	m.tiles = data.Tiles
	m.settings = data.Settings
	return nil
}

func (m *mockDocumentStore) ListTiles(ctx context.Context) ([]models.Tile, error) {
	if m.err != nil {
		return nil, m.err
	}
	tiles := make([]models.Tile, len(m.tiles))
	copy(tiles, m.tiles)
	sort.SliceStable(tiles, func(i, j int) bool { return tiles[i].Order < tiles[j].Order })
	return tiles, nil
}

func (m *mockDocumentStore) GetTile(ctx context.Context, id string) (*models.Tile, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.tiles {
		if m.tiles[i].ID == id {
			tile := m.tiles[i]
			return &tile, nil
		}
	}
	return nil, storage.ErrTileNotFound
}

func (m *mockDocumentStore) CreateTile(ctx context.Context, fields storage.TileFields) (*models.Tile, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	now := time.Now()
	tile := models.Tile{
		ID:          fmt.Sprintf("tile-%d", m.nextID),
		Name:        fields.Name,
		URL:         fields.URL,
		Description: fields.Description,
		Icon:        fields.Icon,
		Order:       fields.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.tiles = append(m.tiles, tile)
	return &tile, nil
}

func (m *mockDocumentStore) UpdateTile(ctx context.Context, id string, patch storage.TilePatch) (*models.Tile, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.tiles {
		if m.tiles[i].ID != id {
			continue
		}
		tile := &m.tiles[i]
		if patch.Name != nil {
			tile.Name = *patch.Name
		}
		if patch.URL != nil {
			tile.URL = *patch.URL
		}
		if patch.Description != nil {
			tile.Description = *patch.Description
		}
		if patch.Icon != nil {
			tile.Icon = *patch.Icon
		}
		if patch.Order != nil {
			tile.Order = *patch.Order
		}
		tile.UpdatedAt = time.Now()
		updated := *tile
		return &updated, nil
	}
	return nil, storage.ErrTileNotFound
}

func (m *mockDocumentStore) DeleteTile(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.tiles {
		if m.tiles[i].ID == id {
			m.tiles = append(m.tiles[:i], m.tiles[i+1:]...)
			return nil
		}
	}
	return storage.ErrTileNotFound
}

func (m *mockDocumentStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	settings := m.settings
	return &settings, nil
}

func (m *mockDocumentStore) UpdateSettings(ctx context.Context, patch storage.SettingsPatch) (*models.Settings, error) {
	if m.err != nil {
		return nil, m.err
	}
	if patch.Theme != nil {
		m.settings.Theme = *patch.Theme
	}
	if patch.SiteName != nil {
		m.settings.SiteName = *patch.SiteName
	}
	m.settings.UpdatedAt = time.Now()
	settings := m.settings
	return &settings, nil
}

// mockImageStore is an in-memory mock implementation of ImageStore
type mockImageStore struct {
	files   map[string][]byte
	nextID  int
	saveErr error
}

func newMockImageStore() *mockImageStore {
	return &mockImageStore{files: make(map[string][]byte)}
}

func (m *mockImageStore) SaveImage(ctx context.Context, originalName string, content io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	raw, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	m.nextID++
	filename := fmt.Sprintf("img-%d.png", m.nextID)
	m.files[filename] = raw
	return "/api/images/" + filename, nil
}

func (m *mockImageStore) ReadImage(ctx context.Context, filename string) ([]byte, error) {
	if filename == "" || filename == ".." {
		return nil, storage.ErrInvalidFilename
	}
	raw, ok := m.files[filename]
	if !ok {
		return nil, storage.ErrImageNotFound
	}
	return raw, nil
}

func (m *mockImageStore) DeleteImage(ctx context.Context, filename string) error {
	delete(m.files, filename)
	return nil
}
