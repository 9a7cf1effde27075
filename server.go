package main

import (
	"flag"
	"fmt"
	"log"

	"board/api/handlers"
	"board/api/middleware"
	"board/api/routes"
	"board/config"
	"board/db"
	"board/services"
	"board/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.Println("Starting server...", config.AppConfig)

	manager, err := db.Connect(config.AppConfig.Database.URL, config.AppConfig.Database.Replicas)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer manager.Close()

	if err := manager.Migrate(); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	files, err := storage.NewFileStore(config.AppConfig.Uploads.Dir)
	if err != nil {
		log.Fatalf("Failed to init file store: %v", err)
	}

	verificationHandler := handlers.NewVerificationHandler(services.NewVerificationService(manager))
	postHandler := handlers.NewPostHandler(services.NewPostService(manager, files))

	router := gin.Default()
	router.Use(middleware.PrometheusMiddleware("board"))

	routes.PublicApi(router, verificationHandler, postHandler, files.Dir())

	addr := fmt.Sprintf("%s:%d", config.AppConfig.Backend.Host, config.AppConfig.Backend.Port)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
