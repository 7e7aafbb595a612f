package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Storage  *Storage
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

// Storage backends, see STORAGE_BACKEND.
const (
	StorageBackendLocal    = "local"
	StorageBackendPostgres = "postgres"
)

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Storage struct {
	Backend  string `env:"STORAGE_BACKEND"`
	LocalDir string `env:"LOCAL_STORE_DIR"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var storage Storage
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&storage.Backend, "s", StorageBackendLocal, "Storage backend: local / postgres")
	flag.StringVar(&storage.LocalDir, "f", `./data`, "Directory for the local JSON store")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&storage)
	if err != nil {
		return nil, fmt.Errorf("error parsing storage config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	if storage.Backend != StorageBackendLocal && storage.Backend != StorageBackendPostgres {
		return nil, fmt.Errorf("unknown storage backend %q", storage.Backend)
	}
	if storage.Backend == StorageBackendPostgres && db.DSN == "" {
		return nil, fmt.Errorf("postgres backend requires a database string")
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Storage:  &storage,
		App:      &app,
	}

	return &config, nil
}
