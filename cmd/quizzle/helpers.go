package main

import (
	"fmt"
	"time"

	"github.com/quizzle-app/quizzle/internal/config"
	"github.com/quizzle-app/quizzle/internal/quiz"
	"github.com/quizzle-app/quizzle/internal/quizzle"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newClient(cfg *config.Config) *quizzle.Client {
	return quizzle.NewClient(
		cfg.API.BaseURL,
		cfg.API.Token,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		cfg.API.MaxRetryAttempts,
	)
}

// setup loads the configuration and builds the API client with the domain validator.
func setup() (*config.Config, *quizzle.Client, *quiz.Validator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	validator, err := quiz.NewValidator()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("quiz.NewValidator() > %w", err)
	}
	return cfg, newClient(cfg), validator, nil
}
