// Package config загружает конфигурацию из файла окружения и переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"goodnotes/pkg/logger"
)

const (
	msgLoadingConfiguration = "loading configuration"
	msgConfigurationLoaded  = "configuration loaded"
	msgEnvFileMissing       = "env file not found, reading environment only"

	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// Load заполняет T из файла envPath (если он есть) и переменных окружения.
// Файл .env экспортируется в окружение и перекрывает уже заданные переменные;
// для yaml, json и toml файлов переменные окружения перекрывают значения из файла.
func Load[T any](ctx context.Context, serviceName, envPath string) (*T, error) {
	log := logger.Log(ctx)
	log.Info(ctx, msgLoadingConfiguration,
		zap.String(attrService, serviceName),
		zap.String(attrPath, envPath))

	var cfg T
	var err error

	if envPath != "" && fileExists(envPath) {
		err = cleanenv.ReadConfig(envPath, &cfg)
	} else {
		if envPath != "" {
			log.Debug(ctx, msgEnvFileMissing, zap.String(attrPath, envPath))
		}
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		log.Error(ctx, errFailedLoadConfiguration,
			zap.String(attrService, serviceName),
			zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded, zap.String(attrService, serviceName))
	return &cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
