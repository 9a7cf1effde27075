package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type ConfigSchema struct {
	Database struct {
		URL      string   `yaml:"url"`
		Replicas []string `yaml:"replicas"`
	} `yaml:"db"`
	Backend struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"backend"`
	Uploads struct {
		Dir string `yaml:"dir"`
	} `yaml:"uploads"`
}

var AppConfig ConfigSchema

// LoadConfig читает yaml-конфиг и применяет переопределения из окружения.
// DATABASE_URL имеет приоритет над значением из файла.
func LoadConfig(filePath string) error {
	// .env подхватываем только если он есть рядом (режим разработки)
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return err
		}
	}

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			if !os.IsNotExist(err) {
				return err
			}
		} else if err := yaml.Unmarshal(data, &AppConfig); err != nil {
			return err
		}
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		AppConfig.Database.URL = url
	}

	if AppConfig.Database.URL == "" {
		AppConfig.Database.URL = "data.db"
	}
	if AppConfig.Backend.Port == 0 {
		AppConfig.Backend.Port = 8080
	}
	if AppConfig.Uploads.Dir == "" {
		AppConfig.Uploads.Dir = "uploads_img"
	}

	return nil
}
