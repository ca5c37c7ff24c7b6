package main

import (
	"log/slog"
	"os"

	"github.com/quicktix/quicktix/internal/storage/factory"
	"github.com/quicktix/quicktix/internal/suggest"
	"github.com/quicktix/quicktix/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type QuickTixConfig struct {
	StorageConfig factory.StorageConfig
	SuggestConfig suggest.Config
}

func (ac *AppConfig) Load() (*QuickTixConfig, error) {
	err := env.LoadDotEnv(ac.ENV, "cmd/quicktix_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	suggestCfg, err := suggest.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load suggestion configuration from environment", "error", err)
		return nil, err
	}

	return &QuickTixConfig{
		StorageConfig: *storageCfg,
		SuggestConfig: *suggestCfg,
	}, nil
}
