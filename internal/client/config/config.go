// Package config содержит конфигурацию клиентского слоя goodnotes.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "goodnotes/pkg/config"
	"goodnotes/pkg/logger"
)

// DefaultEnvFile - файл окружения, который читается при наличии.
const DefaultEnvFile = "goodnotes.env"

const serviceName = "goodnotes-client"

// Config представляет полную конфигурацию клиента.
type Config struct {
	API      APIConfig      `yaml:"api"`
	HTTP     HTTPConfig     `yaml:"http"`
	Logging  LoggingConfig  `yaml:"logging"`
	Shutdown ShutdownConfig `yaml:"shutdown"`
}

// Load загружает конфигурацию из envPath и переменных окружения.
func Load(ctx context.Context, envPath string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, serviceName, envPath)
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	logger.Log(ctx).Info(ctx, "client configuration",
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.Duration("api_timeout", cfg.API.Timeout),
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode))

	return cfg, nil
}
