package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver      string
	DBDSN         string
	ServerPort    string
	SessionSecret string
	TemplateGlob  string
	StaticDir     string
	UploadDir     string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:      os.Getenv("DB_DRIVER"),
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		TemplateGlob:  os.Getenv("TEMPLATE_GLOB"),
		StaticDir:     os.Getenv("STATIC_DIR"),
	}

	if cfg.DBDriver == "" {
		cfg.DBDriver = "sqlite"
	}
	if cfg.DBDSN == "" {
		if cfg.DBDriver != "sqlite" {
			log.Fatal("DB_DSN is not set")
		}
		cfg.DBDSN = "data.db"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Println("SESSION_SECRET is not set, using an insecure development default")
		cfg.SessionSecret = "rentdesk-dev-secret"
	}
	if cfg.TemplateGlob == "" {
		cfg.TemplateGlob = "web/templates/*.html"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "web/static"
	}
	cfg.UploadDir = filepath.Join(cfg.StaticDir, "uploads")

	return cfg
}
