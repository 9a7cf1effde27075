package db

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"gorm.io/plugin/dbresolver"
)

// Manager держит подключение к базе и раздает его хендлерам через DI,
// без глобального состояния.
type Manager struct {
	orm *gorm.DB
}

// dialectorFromURL выбирает драйвер по схеме строки подключения:
// postgres для продакшена, sqlite-файл по умолчанию.
func dialectorFromURL(databaseURL string) gorm.Dialector {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"),
		strings.HasPrefix(databaseURL, "postgresql://"),
		strings.HasPrefix(databaseURL, "host="):
		return postgres.Open(databaseURL)
	default:
		return sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
	}
}

func Connect(databaseURL string, replicaURLs []string) (*Manager, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is empty")
	}

	orm, err := gorm.Open(dialectorFromURL(databaseURL), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
			NoLowerCase:   false,
		},
	})
	if err != nil {
		return nil, err
	}

	if len(replicaURLs) > 0 {
		replicas := make([]gorm.Dialector, 0, len(replicaURLs))
		for _, r := range replicaURLs {
			replicas = append(replicas, dialectorFromURL(r))
		}
		err = orm.Use(dbresolver.Register(dbresolver.Config{
			Replicas: replicas,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, err
		}
	}

	return &Manager{orm: orm}, nil
}

// NewManager оборачивает уже открытое подключение (используется в тестах).
func NewManager(orm *gorm.DB) *Manager {
	return &Manager{orm: orm}
}

// Read возвращает подключение для чтения (слейвы)
func (m *Manager) Read(ctx context.Context) *gorm.DB {
	return m.orm.WithContext(ctx).Clauses(dbresolver.Read)
}

// Write возвращает подключение для записи (мастер)
func (m *Manager) Write(ctx context.Context) *gorm.DB {
	return m.orm.WithContext(ctx).Clauses(dbresolver.Write)
}

func (m *Manager) Close() error {
	sqlDB, err := m.orm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
