package db

import (
	"fmt"

	"board/models"
)

// Migrate применяет схему users/posts. Вызывается явно из main,
// а не при подключении, чтобы миграции не были привязаны к старту сервиса.
func (m *Manager) Migrate() error {
	if err := m.orm.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
