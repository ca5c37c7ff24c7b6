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

type CLIConfig struct {
	StorageConfig factory.StorageConfig
	SuggestConfig suggest.Config
}

func (ac *AppConfig) Load() (*CLIConfig, error) {
	err := env.LoadDotEnv(ac.ENV, "cmd/quicktix_cli/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	suggestCfg, err := suggest.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	return &CLIConfig{
		StorageConfig: *storageCfg,
		SuggestConfig: *suggestCfg,
	}, nil
}
