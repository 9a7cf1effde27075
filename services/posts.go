package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"board/db"
	"board/models"
	"board/storage"
)

type PostService struct {
	db    *db.Manager
	files *storage.FileStore
}

func NewPostService(manager *db.Manager, files *storage.FileStore) *PostService {
	return &PostService{db: manager, files: files}
}

// CreatePost сохраняет изображение в файловое хранилище и создает запись поста.
// post.ImageName должен содержать оригинальное имя файла от клиента,
// ключ хранения генерируется здесь.
func (ps *PostService) CreatePost(ctx context.Context, post *models.Post, image io.Reader) error {
	key, err := ps.files.Save(image, post.ImageName)
	if err != nil {
		return fmt.Errorf("failed to store image: %w", err)
	}

	post.ImageKey = key
	post.CreatedAt = time.Now()

	// Записанный файл при ошибке вставки не откатываем
	if err := ps.db.Write(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// ListPosts возвращает все посты в порядке создания.
func (ps *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0)
	err := ps.db.Read(ctx).Order("id ASC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
