package imagefs

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iudanet/homelabster/internal/server/storage"
)

const (
	dirPerm  = 0o755
	filePerm = 0o600

	// randomSuffixLen количество случайных байт в имени файла
	randomSuffixLen = 8
)

// Store реализует ImageStore поверх каталога с файлами иконок.
// Имена файлов генерируются по схеме "<unix_millis>-<hex>.<ext>",
// чтобы загрузки не пересекались между собой.
type Store struct {
	dir string
}

// Compile-time check that Store implements ImageStore
var _ storage.ImageStore = (*Store)(nil)

// New creates a new image store over dir, creating it if needed
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: failed to create images directory: %v", storage.ErrStorageUnavailable, err)
	}
	return &Store{dir: dir}, nil
}

// SaveImage сохраняет содержимое под новым уникальным именем
// и возвращает публичный путь для отдачи файла
func (s *Store) SaveImage(ctx context.Context, originalName string, content io.Reader) (string, error) {
	filename, err := generateFilename(originalName)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, filename), os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create image file: %v", storage.ErrStorageUnavailable, err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("%w: failed to write image file: %v", storage.ErrStorageUnavailable, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: failed to close image file: %v", storage.ErrStorageUnavailable, err)
	}

	return "/api/images/" + filename, nil
}

// ReadImage читает файл по имени. Имена с разделителями пути или
// ".." отклоняются до обращения к файловой системе.
func (s *Store) ReadImage(ctx context.Context, filename string) ([]byte, error) {
	if !safeFilename(filename) {
		return nil, storage.ErrInvalidFilename
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrImageNotFound
		}
		return nil, fmt.Errorf("%w: failed to read image file: %v", storage.ErrStorageUnavailable, err)
	}

	return raw, nil
}

// DeleteImage удаляет файл. Отсутствующий файл не считается ошибкой.
func (s *Store) DeleteImage(ctx context.Context, filename string) error {
	if !safeFilename(filename) {
		return storage.ErrInvalidFilename
	}

	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: failed to delete image file: %v", storage.ErrStorageUnavailable, err)
	}

	return nil
}

// ContentType возвращает MIME тип по расширению файла
func ContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}

// generateFilename собирает уникальное имя файла:
// метка времени в миллисекундах плюс случайный hex суффикс,
// расширение берется из оригинального имени
func generateFilename(originalName string) (string, error) {
	buf := make([]byte, randomSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random filename suffix: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), ext), nil
}

// safeFilename отклоняет имена, способные выйти за пределы каталога
func safeFilename(filename string) bool {
	if filename == "" {
		return false
	}
	if strings.Contains(filename, "..") {
		return false
	}
	if strings.ContainsAny(filename, `/\`) {
		return false
	}
	return true
}
