package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/homelabster/internal/models"
	"github.com/iudanet/homelabster/internal/server/storage"
)

const (
	// dataFileName имя JSON документа внутри каталога данных
	dataFileName = "settings.json"
	// tmpSuffix суффикс временного файла для атомарной записи
	tmpSuffix = ".tmp"

	dirPerm  = 0o755
	filePerm = 0o600
)

// Store реализует DocumentStore поверх одного JSON файла.
// Каждая мутация это полный read-modify-write всего документа
// с атомарной заменой файла через rename. Версионирования и
// блокировок нет намеренно: инструмент одно-админский,
// последняя запись побеждает.
type Store struct {
	path     string // полный путь к settings.json
	siteName string // название сайта для документа по умолчанию
}

// Compile-time check that Store implements DocumentStore
var _ storage.DocumentStore = (*Store)(nil)

// New creates a new JSON file document store.
// dataDir is created if it does not exist yet.
// defaultSiteName is used when the default document is synthesized;
// empty string falls back to models.DefaultSiteName.
func New(dataDir, defaultSiteName string) (*Store, error) {
	if err := os.MkdirAll(dataDir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: failed to create data directory: %v", storage.ErrStorageUnavailable, err)
	}

	return &Store{
		path:     filepath.Join(dataDir, dataFileName),
		siteName: defaultSiteName,
	}, nil
}

// Load возвращает текущий документ. Если файла еще нет,
// синтезирует документ по умолчанию, сохраняет и возвращает его,
// так что повторный Load вернет тот же самый документ.
func (s *Store) Load(ctx context.Context) (*models.AppData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: failed to read app data: %v", storage.ErrStorageUnavailable, err)
		}

		// Первый запуск: создаем и сразу сохраняем документ по умолчанию
		data := models.NewDefaultAppData(s.siteName, time.Now())
		if err := s.Save(ctx, data); err != nil {
			return nil, err
		}
		return data, nil
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: failed to parse app data: %v", storage.ErrStorageUnavailable, err)
	}

	return &data, nil
}

// Save атомарно сохраняет весь документ: полная сериализация во
// временный файл рядом с целевым и один rename поверх. Прерванная
// запись не затрагивает предыдущее состояние на диске.
func (s *Store) Save(ctx context.Context, data *models.AppData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal app data: %v", storage.ErrStorageUnavailable, err)
	}

	tmpPath := s.path + tmpSuffix
	if err := os.WriteFile(tmpPath, raw, filePerm); err != nil {
		return fmt.Errorf("%w: failed to write app data: %v", storage.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		// rename не прошел, убираем временный файл чтобы не копился мусор
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace app data: %v", storage.ErrStorageUnavailable, err)
	}

	return nil
}

// ListTiles возвращает плитки, отсортированные по Order по возрастанию.
// Сортировка стабильная: при равных Order сохраняется порядок добавления.
func (s *Store) ListTiles(ctx context.Context) ([]models.Tile, error) {
	data, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	tiles := make([]models.Tile, len(data.Tiles))
	copy(tiles, data.Tiles)
	sort.SliceStable(tiles, func(i, j int) bool {
		return tiles[i].Order < tiles[j].Order
	})

	return tiles, nil
}

// GetTile ищет плитку по id линейным проходом
func (s *Store) GetTile(ctx context.Context, id string) (*models.Tile, error) {
	data, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range data.Tiles {
		if data.Tiles[i].ID == id {
			tile := data.Tiles[i]
			return &tile, nil
		}
	}

	return nil, storage.ErrTileNotFound
}

// CreateTile добавляет новую плитку с новым UUID и текущими
// метками времени, сохраняет документ и возвращает плитку
func (s *Store) CreateTile(ctx context.Context, fields storage.TileFields) (*models.Tile, error) {
	data, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tile := models.Tile{
		ID:          uuid.New().String(),
		Name:        fields.Name,
		URL:         fields.URL,
		Description: fields.Description,
		Icon:        fields.Icon,
		Order:       fields.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	data.Tiles = append(data.Tiles, tile)
	if err := s.Save(ctx, data); err != nil {
		return nil, err
	}

	return &tile, nil
}

// UpdateTile накладывает patch на существующую плитку.
// nil-поля не трогаются, id и createdAt не перезаписываются.
func (s *Store) UpdateTile(ctx context.Context, id string, patch storage.TilePatch) (*models.Tile, error) {
	data, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range data.Tiles {
		if data.Tiles[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, storage.ErrTileNotFound
	}

	tile := &data.Tiles[idx]
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

	if err := s.Save(ctx, data); err != nil {
		return nil, err
	}

	updated := *tile
	return &updated, nil
}

// DeleteTile удаляет плитку по id и сохраняет документ
func (s *Store) DeleteTile(ctx context.Context, id string) error {
	data, err := s.Load(ctx)
	if err != nil {
		return err
	}

	remaining := data.Tiles[:0:0]
	for _, tile := range data.Tiles {
		if tile.ID != id {
			remaining = append(remaining, tile)
		}
	}
	if len(remaining) == len(data.Tiles) {
		return storage.ErrTileNotFound
	}

	data.Tiles = remaining
	return s.Save(ctx, data)
}

// GetSettings возвращает настройки из документа
func (s *Store) GetSettings(ctx context.Context) (*models.Settings, error) {
	data, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	settings := data.Settings
	return &settings, nil
}

// UpdateSettings накладывает patch на настройки.
// createdAt не перезаписывается, updatedAt обновляется всегда.
func (s *Store) UpdateSettings(ctx context.Context, patch storage.SettingsPatch) (*models.Settings, error) {
	data, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if patch.Theme != nil {
		data.Settings.Theme = *patch.Theme
	}
	if patch.SiteName != nil {
		data.Settings.SiteName = *patch.SiteName
	}
	data.Settings.UpdatedAt = time.Now()

	if err := s.Save(ctx, data); err != nil {
		return nil, err
	}

	settings := data.Settings
	return &settings, nil
}
