package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore хранит загруженные изображения на локальном диске.
// Имя файла от клиента не используется как путь: ключом хранения служит
// сгенерированный uuid, оригинальное имя остается только метаданными.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (fs *FileStore) Dir() string {
	return fs.dir
}

// Save записывает содержимое под новым ключом и возвращает его.
// Из клиентского имени берется только расширение.
func (fs *FileStore) Save(src io.Reader, originalName string) (string, error) {
	ext := filepath.Ext(filepath.Base(originalName))
	if strings.ContainsAny(ext, `/\`) || len(ext) > 16 {
		ext = ""
	}
	key := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(fs.dir, key))
	if err != nil {
		return "", fmt.Errorf("failed to create file for %s: %w", key, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", key, err)
	}
	return key, nil
}

// Path возвращает путь к файлу по ключу хранения.
func (fs *FileStore) Path(key string) string {
	return filepath.Join(fs.dir, key)
}
