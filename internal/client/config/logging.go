package config

import "goodnotes/pkg/logger"

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"GOODNOTES_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"GOODNOTES_LOGGER_MODE" env-default:"production"`
}

// GetEnvironment возвращает режим работы логгера.
func (c *LoggingConfig) GetEnvironment() logger.Environment {
	if c.Mode == string(logger.Development) {
		return logger.Development
	}
	return logger.Production
}
