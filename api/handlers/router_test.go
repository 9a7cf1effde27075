package handlers_test

import (
	"testing"

	"board/api/handlers"
	"board/api/routes"
	"board/db"
	"board/models"
	"board/services"
	"board/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter поднимает роутер на sqlite в памяти и временном каталоге загрузок
func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	orm, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := orm.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	manager := db.NewManager(orm)

	files, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to init file store: %v", err)
	}

	verificationHandler := handlers.NewVerificationHandler(services.NewVerificationService(manager))
	postHandler := handlers.NewPostHandler(services.NewPostService(manager, files))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.PublicApi(router, verificationHandler, postHandler, files.Dir())

	return router, orm
}
